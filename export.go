package keplerian

import (
	"fmt"
	"os"
	"time"
)

// ExportConfig configures the exporting of a propagation.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

func createCSVFile(conf ExportConfig) *os.File {
	filename := conf.Filename
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/anomalies-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", keplerianConfig().outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/anomalies-%s.csv", keplerianConfig().outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Saving file to %s.\n", f.Name())
	f.WriteString("tick,meanAnomaly,eccentricAnomaly,trueAnomaly,x,y,z")
	return f
}

// StreamStates streams the output of the channel to a CSV file. It returns
// when the channel is closed.
func StreamStates(conf ExportConfig, stateChan <-chan State) {
	var f *os.File
	for {
		state, more := <-stateChan
		if !more {
			break
		}
		if f == nil {
			f = createCSVFile(conf)
			defer f.Close()
		}
		f.WriteString(fmt.Sprintf("\n%f,%f,%f,%f,%f,%f,%f", state.Tick, state.M, state.E, state.Nu, state.R[0], state.R[1], state.R[2]))
	}
}

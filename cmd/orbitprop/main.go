package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"keplerian"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and propagates the body.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "propagation scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read parent body
	centralBodyName := viper.GetString("orbit.body")
	var centralBody keplerian.CelestialObject
	if centralBodyName == "" {
		centralBody = keplerian.DefaultParentBody()
	} else {
		var err error
		centralBody, err = keplerian.CelestialObjectFromString(centralBodyName)
		if err != nil {
			log.Fatalf("could not understand body `%s`: %s", centralBodyName, err)
		}
	}

	// Read orbital state
	name := viper.GetString("body.name")
	mass := viper.GetFloat64("body.mass")
	R := []float64{viper.GetFloat64("body.position.x"), viper.GetFloat64("body.position.y"), viper.GetFloat64("body.position.z")}
	V := []float64{viper.GetFloat64("body.velocity.x"), viper.GetFloat64("body.velocity.y"), viper.GetFloat64("body.velocity.z")}
	body := keplerian.NewOrbitalBody(name, R, V, mass, centralBody)

	// Read propagation parameters. The epoch may be given as a Julian date or
	// as a timestamp; the simulation tick is seconds since that epoch.
	epochDT := confReadJDEorTime("propagation.epoch")
	M0 := viper.GetFloat64("propagation.meanAnomaly")
	if viper.IsSet("propagation.meanAnomalyDeg") {
		M0 = keplerian.Deg2rad(viper.GetFloat64("propagation.meanAnomalyDeg"))
	}
	step := viper.GetFloat64("propagation.step")
	ticks := viper.GetInt("propagation.ticks")
	if step <= 0 || ticks <= 0 {
		log.Fatalf("invalid propagation parameters: step=%f ticks=%d", step, ticks)
	}
	body.SetEpoch(0, M0)
	if verbose {
		log.Printf("[conf] epoch: %s (JD %f), step: %fs, ticks: %d", epochDT, julian.TimeToJD(epochDT), step, ticks)
	}

	// Export
	conf := keplerian.ExportConfig{
		Filename:  viper.GetString("export.filename"),
		AsCSV:     viper.GetBool("export.csv"),
		Timestamp: viper.GetBool("export.timestamp"),
	}

	final, err := keplerian.NewPropagation(body, 0, step, ticks, conf).Propagate()
	if err != nil {
		log.Fatalf("propagation failed: %s", err)
	}
	log.Printf("final state at %s: tick=%f M=%f E=%f° ν=%f R=%+v",
		epochDT.Add(time.Duration(final.Tick)*time.Second), final.Tick, final.M, keplerian.Rad2deg(final.E), final.Nu, final.R)
}

func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}

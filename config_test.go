package keplerian

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	prevConfig, prevLoaded := config, cfgLoaded
	defer func() { config, cfgLoaded = prevConfig, prevLoaded }()
	config, cfgLoaded = _keplerianconfig{outputDir: "."}, false
	os.Unsetenv("KEPLERIAN_CONFIG")
	conf := keplerianConfig()
	if conf.outputDir != "." {
		t.Fatalf("default output dir %q", conf.outputDir)
	}
	if !DefaultParentBody().Equals(Earth) {
		t.Fatal("default parent body is not Earth")
	}
}

func TestConfigFile(t *testing.T) {
	prevConfig, prevLoaded := config, cfgLoaded
	defer func() {
		config, cfgLoaded = prevConfig, prevLoaded
		os.Unsetenv("KEPLERIAN_CONFIG")
	}()
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/conf.toml", []byte("[general]\noutput_path = \"/tmp/out\"\nparent_body = \"Mars\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("KEPLERIAN_CONFIG", dir)
	config, cfgLoaded = _keplerianconfig{outputDir: "."}, false
	conf := keplerianConfig()
	if conf.outputDir != "/tmp/out" {
		t.Fatalf("output dir %q", conf.outputDir)
	}
	if !DefaultParentBody().Equals(Mars) {
		t.Fatalf("parent body %q", conf.parentBody)
	}
}

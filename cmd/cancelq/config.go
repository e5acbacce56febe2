package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// drainInput lists the values to enqueue and the values to remove before
// draining.
type drainInput struct {
	Values []string `yaml:"values"`
	Skip   []string `yaml:"skip"`
}

var defaultDrainInput = drainInput{
	Values: []string{"zero", "one", "two", "test-skip", "test-skip", "three"},
	Skip:   []string{"test-skip"},
}

func readDrainInput(md []byte) (*drainInput, error) {
	in := &drainInput{}
	if err := yaml.UnmarshalStrict(md, in); err != nil {
		return nil, fmt.Errorf("parsing yml drain input: %w", err)
	}
	return in, nil
}

func readDrainInputFromFile(filepath string) (*drainInput, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading drain input %s: %w", filepath, err)
	}
	return readDrainInput(md)
}

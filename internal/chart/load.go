package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a JSON array of chart configs and validates each of them.
func Load(r io.Reader) ([]Config, error) {
	var cfgs []Config
	if err := json.NewDecoder(r).Decode(&cfgs); err != nil {
		return nil, fmt.Errorf("decode charts: %w", err)
	}
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("%w: no charts", ErrInvalidConfig)
	}
	for i, c := range cfgs {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("chart %d: %w", i, err)
		}
	}
	return cfgs, nil
}

func LoadFile(path string) ([]Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

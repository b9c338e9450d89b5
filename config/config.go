package config

import (
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"stakepool/logx"
)

// LoadScenarioConfig reads and parses a scenario .yml file
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", "Failed to open scenario file: ", err)
		return nil, err
	}
	defer file.Close()

	var scenarioFile ScenarioFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&scenarioFile); err != nil {
		logx.Error("CONFIG", "Failed to decode scenario YAML: ", err)
		return nil, err
	}
	logx.Info("CONFIG", "Loaded scenario: TotalReward=", scenarioFile.Pool.TotalReward,
		", Stakes=", len(scenarioFile.Pool.Stakes), " entries")
	return &scenarioFile.Pool, nil
}

type LogConfig struct {
	Filename   string `ini:"filename"`
	MaxSizeMB  int    `ini:"max_size_mb"`
	MaxAgeDays int    `ini:"max_age_days"`
}

// LoadLogConfig reads log settings from the [log] section of an .ini file
func LoadLogConfig(path string) (*LogConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	logSection := cfg.Section("log")
	logCfg := &LogConfig{}
	err = logSection.MapTo(logCfg)
	if err != nil {
		return nil, err
	}
	return logCfg, nil
}

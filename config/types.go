package config

// StakeEntry is one stake to replay against the pool, in file order.
// Later entries for the same participant overwrite earlier ones.
type StakeEntry struct {
	Participant string `yaml:"participant"`
	Amount      uint64 `yaml:"amount"`
}

// ScenarioConfig holds the pool setup from a scenario .yml file.
type ScenarioConfig struct {
	TotalReward uint64       `yaml:"total_reward"`
	Stakes      []StakeEntry `yaml:"stakes"`
}

// ScenarioFile is the top-level structure of a scenario .yml file.
type ScenarioFile struct {
	Pool ScenarioConfig `yaml:"pool"`
}

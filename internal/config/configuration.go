package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server ServerConfig `yaml:"server"`
	Media  MediaConfig  `yaml:"media"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

// MediaConfig points at the external asset workers: the image worker produces
// resized variants, the storage worker serves content URLs.
type MediaConfig struct {
	ImageWorkerURL   string `yaml:"imageWorkerUrl"`
	StorageWorkerURL string `yaml:"storageWorkerUrl"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.RequestConfig.SizeLimit == 0 {
		config.Server.RequestConfig.SizeLimit = 50
	}
	if config.Server.CleanConfig.Schedule == "" {
		config.Server.CleanConfig.Schedule = "@hourly"
	}
	return &config, nil
}

package main

import (
	"Mediabox/internal/config"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("mediabox.yaml")
}

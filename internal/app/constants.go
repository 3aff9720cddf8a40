package app

const (
	Name           = "airtimegraph"
	ConfigFilename = "config.json"
	LogFilename    = "app.log"
)

package cmd

const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
)

type Config struct {
	Mode        string
	HTTPPort    string
	LogLevel    string
	OrderPrompt string
}

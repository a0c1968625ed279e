package config

// Version is the employee binary version.
// Set at build time via: -ldflags "-X github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"

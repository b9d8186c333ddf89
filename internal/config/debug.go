package config

import "os"

func IsDebug() bool {
	return os.Getenv("TERMCORE_DEBUG") == "1"
}

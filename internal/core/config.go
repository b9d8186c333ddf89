package core

import "time"

type BridgeConfig interface {
	GetAddr() string
	GetMaxConns() int
	GetIdleTimeout() time.Duration
}

type HistoryConfig interface {
	GetHistoryBackend() string
	GetHistoryFilePath() string
	GetHistoryDBPath() string
	GetHistoryLimit() int
}

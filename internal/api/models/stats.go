package models

import "time"

// CPUStats contains system CPU statistics.
type CPUStats struct {
	NumCPU      int     `json:"num_cpu"`
	UsedPercent float64 `json:"used_percent"`
	IdlePercent float64 `json:"idle_percent"`
}

// MemoryStats contains system memory statistics.
type MemoryStats struct {
	TotalMB     float64 `json:"total_mb"`
	FreeMB      float64 `json:"free_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// OperationStats tallies how many times each endpoint has been invoked
// since process start.
type OperationStats struct {
	DecodeTotal  uint64 `json:"decode_total"`
	EncodeTotal  uint64 `json:"encode_total"`
	CompareTotal uint64 `json:"compare_total"`
	ErrorsTotal  uint64 `json:"errors_total"`
}

// ServerStatsResponse contains process runtime statistics.
type ServerStatsResponse struct {
	Uptime        string          `json:"uptime"`
	UptimeSeconds int64           `json:"uptime_seconds"`
	StartTime     time.Time       `json:"start_time"`
	GoRoutines    int             `json:"goroutines"`
	CPU           CPUStats        `json:"cpu"`
	Memory        MemoryStats     `json:"memory"`
	Operations    OperationStats  `json:"operations"`
}

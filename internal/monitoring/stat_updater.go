package monitoring

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	ws "github.com/campusconnect/portal-be/internal/websocket"
)

// Stats is a point-in-time snapshot of host health, served by the health
// endpoint and broadcast periodically over the websocket hub.
type Stats struct {
	Status        string  `json:"status"`
	UptimeSeconds uint64  `json:"uptime"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemUsedMb     uint64  `json:"memUsedMb"`
	MemTotalMb    uint64  `json:"memTotalMb"`
}

// Snapshot samples current host stats. Sampling failures degrade to zero
// values rather than failing the caller.
func Snapshot() Stats {
	stats := Stats{Status: "ok"}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemUsedMb = vm.Used / 1024 / 1024
		stats.MemTotalMb = vm.Total / 1024 / 1024
	}
	if uptime, err := host.Uptime(); err == nil {
		stats.UptimeSeconds = uptime
	}

	return stats
}

// StatUpdater periodically samples host stats and broadcasts them to all
// connected websocket clients.
type StatUpdater struct {
	hub    *ws.Hub
	ticker *time.Ticker
	done   chan bool
}

// NewStatUpdater creates a new StatUpdater. The hub may be nil when the
// broadcast module is disabled; Run is then a no-op.
func NewStatUpdater(hub *ws.Hub) *StatUpdater {
	return &StatUpdater{
		hub:  hub,
		done: make(chan bool),
	}
}

// Run starts the periodic updates.
func (su *StatUpdater) Run() {
	if su.hub == nil {
		return
	}

	log.Info().Msg("Starting background stat updater...")
	su.ticker = time.NewTicker(30 * time.Second)
	defer su.ticker.Stop()

	for {
		select {
		case <-su.done:
			log.Info().Msg("Stopping background stat updater.")
			return
		case <-su.ticker.C:
			su.hub.Broadcast <- ws.NewStatsMessage(Snapshot())
		}
	}
}

// Stop halts the periodic updates.
func (su *StatUpdater) Stop() {
	if su.hub == nil {
		return
	}
	su.done <- true
}

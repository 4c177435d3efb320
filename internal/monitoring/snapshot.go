// Package monitoring samples host and database vitals for the admin
// status endpoint.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type Snapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsed      string  `json:"disk_used"`
	DiskTotal     string  `json:"disk_total"`

	DatabaseStatus    string `json:"database_status"`
	ActiveConnections int    `json:"active_connections"`
	DBSize            string `json:"db_size"`
	InvoiceCount      int    `json:"invoice_count"`

	Uptime string `json:"uptime"`
}

type Sampler struct {
	db      *pgxpool.Pool
	started time.Time
}

func NewSampler(db *pgxpool.Pool) *Sampler {
	return &Sampler{db: db, started: time.Now()}
}

// Sample collects host vitals via gopsutil and database vitals via
// pg_stat queries. Individual probe failures leave zero values rather
// than failing the snapshot.
func (s *Sampler) Sample(ctx context.Context) Snapshot {
	snap := Snapshot{Uptime: time.Since(s.started).Round(time.Second).String()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryPercent = vm.UsedPercent
		snap.MemoryUsed = formatBytes(vm.Used)
		snap.MemoryTotal = formatBytes(vm.Total)
	}
	if du, err := disk.Usage("/"); err == nil {
		snap.DiskPercent = du.UsedPercent
		snap.DiskUsed = formatBytes(du.Used)
		snap.DiskTotal = formatBytes(du.Total)
	}

	dbCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	snap.DatabaseStatus = "healthy"
	if err := s.db.Ping(dbCtx); err != nil {
		snap.DatabaseStatus = "unhealthy"
		return snap
	}
	s.db.QueryRow(dbCtx,
		`SELECT count(*) FROM pg_stat_activity WHERE datname = current_database()`,
	).Scan(&snap.ActiveConnections)
	s.db.QueryRow(dbCtx,
		`SELECT pg_size_pretty(pg_database_size(current_database()))`,
	).Scan(&snap.DBSize)
	s.db.QueryRow(dbCtx, `SELECT count(*) FROM invoices`).Scan(&snap.InvoiceCount)

	return snap
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGT"[exp])
}

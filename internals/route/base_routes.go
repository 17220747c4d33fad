package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"gorm.io/gorm"

	database "mutualaid_backend/internals/databases"
)

// systemStats is best effort; a reading that fails reports zero.
func systemStats() fiber.Map {
	stats := fiber.Map{"memory_total_bytes": uint64(0), "memory_used_bytes": uint64(0), "process_rss_bytes": uint64(0)}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats["memory_total_bytes"] = vm.Total
		stats["memory_used_bytes"] = vm.Total - vm.Available
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil && info != nil {
			stats["process_rss_bytes"] = info.RSS
		}
	}
	return stats
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
			"system":         systemStats(),
		})
	})
}

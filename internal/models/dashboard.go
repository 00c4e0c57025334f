package models

import "time"

// DashboardResumo is the aggregate payload served by GET /dashboard.
type DashboardResumo struct {
	TotalRevendas     int                `json:"total_revendas"`
	RevendasAtivas    int                `json:"revendas_ativas"`
	TotalAdmins       int                `json:"total_admins"`
	LogsHoje          int                `json:"logs_hoje"`
	RevendasPorEstado []RevendaPorEstado `json:"revendas_por_estado"`
	RevendasPorMes    []RevendaPorMes    `json:"revendas_por_mes"`
	UltimosLogs       []LogRegistro      `json:"ultimos_logs"`
	GeradoEm          time.Time          `json:"gerado_em"`
}

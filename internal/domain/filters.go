package domain

import "time"

// ReportFilters delimita o período dos relatórios. As datas chegam como datas
// de calendário inclusivas; o handler converte EndDate para fim de dia antes
// de acionar o motor de agregação.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

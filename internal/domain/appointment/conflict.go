package appointment

import (
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// Duração assumida quando o agendamento não tem duração própria
const DefaultDurationMinutes = 30

// ===============================
// Conflict Detection
// ===============================

// Candidate é a janela proposta para um agendamento (criação ou reagendamento).
// ExcludeID evita que um reagendamento conflite com o próprio registro.
type Candidate struct {
	Start           time.Time
	DurationMinutes int
	ExcludeID       uint
}

func (c Candidate) End() time.Time {
	return c.Start.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Window retorna a janela [início, fim) de um agendamento existente,
// aplicando a duração padrão quando não há duração própria.
func Window(ap *models.Appointment) (time.Time, time.Time) {
	minutes := DefaultDurationMinutes
	if ap.DurationMinutes != nil && *ap.DurationMinutes > 0 {
		minutes = *ap.DurationMinutes
	}
	return ap.ScheduledAt, ap.ScheduledAt.Add(time.Duration(minutes) * time.Minute)
}

// FindConflicts varre os agendamentos existentes e devolve o subconjunto que
// sobrepõe a janela candidata. Função pura, O(n), preserva a ordem de entrada.
//
// Intervalos semiabertos: [start, end) — horários encostados NÃO conflitam.
// Cancelados nunca contam como conflito.
func FindConflicts(cand Candidate, existing []models.Appointment) []models.Appointment {
	candStart := cand.Start
	candEnd := cand.End()

	var conflicts []models.Appointment
	for _, other := range existing {
		if other.Status == string(StatusCancelled) {
			continue
		}
		if cand.ExcludeID != 0 && other.ID == cand.ExcludeID {
			continue
		}

		otherStart, otherEnd := Window(&other)
		if candStart.Before(otherEnd) && otherStart.Before(candEnd) {
			conflicts = append(conflicts, other)
		}
	}

	return conflicts
}

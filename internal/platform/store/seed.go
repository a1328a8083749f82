package store

import "github.com/rs/zerolog"

// Table names for the demo collections.
const (
	TablePatients        = "patients"
	TableTumorMarkers    = "tumor_markers"
	TableRecommendations = "ai_recommendations"
)

func f(v float64) *float64 { return &v }

// NewSeededStore returns a store preloaded with the demo dataset: four
// patients, their tumor-marker history and the canned AI
// recommendations. Seed rows never change between runs so the demo
// always presents the same plausible data.
func NewSeededStore(logger zerolog.Logger) *Store {
	s := NewStore(logger)

	s.Register(TablePatients, []Record{
		{
			"id":         "1",
			"name":       "Иванов Иван Петрович",
			"age":        45,
			"diagnosis":  "Рак легких",
			"status":     "active",
			"last_visit": "2024-01-15",
			"created_at": "2024-01-01T10:00:00Z",
		},
		{
			"id":         "2",
			"name":       "Петрова Анна Сергеевна",
			"age":        52,
			"diagnosis":  "Рак молочной железы",
			"status":     "recovering",
			"last_visit": "2024-01-10",
			"created_at": "2024-01-02T11:00:00Z",
		},
		{
			"id":         "3",
			"name":       "Сидоров Петр Дмитриевич",
			"age":        38,
			"diagnosis":  "Меланома",
			"status":     "critical",
			"last_visit": "2024-01-05",
			"created_at": "2024-01-03T12:00:00Z",
		},
		{
			"id":         "4",
			"name":       "Кузнецова Мария Александровна",
			"age":        61,
			"diagnosis":  "Колоректальный рак",
			"status":     "active",
			"last_visit": "2024-01-12",
			"created_at": "2024-01-03T12:00:00Z",
		},
	})

	s.Register(TableTumorMarkers, []Record{
		{"id": "1", "patient_id": "1", "date": "2023-11-01", "cea": f(5.2), "ca19_9": f(35), "psa": nil, "ca125": nil},
		{"id": "2", "patient_id": "1", "date": "2023-11-15", "cea": f(6.8), "ca19_9": f(42), "psa": nil, "ca125": nil},
		{"id": "3", "patient_id": "1", "date": "2023-12-01", "cea": f(8.1), "ca19_9": f(55), "psa": nil, "ca125": nil},
		{"id": "4", "patient_id": "2", "date": "2023-11-01", "cea": nil, "ca19_9": nil, "psa": nil, "ca125": f(45)},
		{"id": "5", "patient_id": "2", "date": "2023-11-15", "cea": nil, "ca19_9": nil, "psa": nil, "ca125": f(38)},
	})

	s.Register(TableRecommendations, []Record{
		{
			"id":         "1",
			"patient_id": "1",
			"recommendations": []string{
				"Рассмотреть таргетную терапию на основе мутаций EGFR",
				"Контроль уровня CEA каждые 2 недели",
				"Повторная КТ через 1 месяц для оценки ответа на терапию",
			},
			"confidence":    0.92,
			"created_at":    "2024-01-15T10:30:00Z",
			"model_version": "onkoai-v2.1",
		},
		{
			"id":         "2",
			"patient_id": "2",
			"recommendations": []string{
				"Комбинация иммунотерапии с химиотерапией",
				"Мониторинг уровня CA 15-3 каждые 3 недели",
				"Консультация радиотерапевта для оценки возможности локальной терапии",
			},
			"confidence":    0.88,
			"created_at":    "2024-01-14T14:45:00Z",
			"model_version": "onkoai-v2.1",
		},
	})

	return s
}

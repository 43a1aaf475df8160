package domain

import "github.com/shopspring/decimal"

type FunnelBucket struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type Funnel struct {
	Buckets    []FunnelBucket  `json:"buckets"`
	Total      int             `json:"total"`
	Conversion decimal.Decimal `json:"conversion"`
}

type FunnelReport struct {
	TreatmentPlans Funnel `json:"treatment_plans"`
	Leads          Funnel `json:"leads"`
	Skipped        int    `json:"skipped"`
}

// Bucket retorna o agrupamento da etapa informada
func (f Funnel) Bucket(stage string) (FunnelBucket, bool) {
	for _, bucket := range f.Buckets {
		if bucket.Stage == stage {
			return bucket, true
		}
	}
	return FunnelBucket{}, false
}

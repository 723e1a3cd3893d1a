package models

// Requests for the prediction HTTP endpoints. Defined in domain for
// consistency and reuse.

type PredictRequest struct {
	Window int   `query:"window" json:"window" default:"50" validate:"omitempty,gte=1"`
	Seed   int64 `query:"seed" json:"seed" validate:"omitempty,gte=0"`
}

type MultiPredictRequest struct {
	Policy   string `query:"policy" json:"policy" default:"F"`
	Batch    int    `query:"batch" json:"batch" default:"5" validate:"gte=1,lte=50"`
	Seed     int64  `query:"seed" json:"seed" validate:"omitempty,gte=0"`
	HotSplit int    `query:"hot_split" json:"hot_split" validate:"omitempty,oneof=4 5"`
}

type LiveRequest struct {
	Window   int    `query:"window" json:"window" default:"50" validate:"omitempty,gte=1"`
	Policy   string `query:"policy" json:"policy" default:"F"`
	Count    int    `query:"count" json:"count" default:"5" validate:"gte=1,lte=50"`
	Seed     int64  `query:"seed" json:"seed" validate:"omitempty,gte=0"`
	HotSplit int    `query:"hot_split" json:"hot_split" validate:"omitempty,oneof=4 5"`
}

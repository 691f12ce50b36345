package service

// 预算执行状态
const (
	BudgetStatusOnTrack  = "on_track"
	BudgetStatusWarning  = "warning"
	BudgetStatusExceeded = "exceeded"
)

// BudgetEvaluation 预算执行评估结果
type BudgetEvaluation struct {
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"` // 可为负数，表示超支金额
	Status     string  `json:"status"`    // on_track/warning/exceeded
}

// EvaluateBudget 比较某类别的实际支出与预算限额
// 限额为 0 时百分比记为 0；判定顺序固定：>=100 超支，>=80 预警，否则正常
func EvaluateBudget(limit, spent float64) BudgetEvaluation {
	eval := BudgetEvaluation{
		Spent:     spent,
		Remaining: limit - spent,
	}
	if limit > 0 {
		eval.Percentage = spent / limit * 100
	}

	switch {
	case eval.Percentage >= 100:
		eval.Status = BudgetStatusExceeded
	case eval.Percentage >= 80:
		eval.Status = BudgetStatusWarning
	default:
		eval.Status = BudgetStatusOnTrack
	}
	return eval
}

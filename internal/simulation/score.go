package simulation

import (
	"fmt"
	"strings"

	"github.com/israyx/sintrade/internal/content"
)

// Quality grades the risk/reward ratio.
type Quality string

const (
	QualityPoor       Quality = "poor"       // rr < 1.5
	QualityAcceptable Quality = "acceptable" // 1.5 <= rr < 2.0
	QualityStrong     Quality = "strong"     // rr >= 2.0
)

// Report is the structured evaluation of a completed wizard.
type Report struct {
	RR            float64
	Quality       Quality
	OversizedRisk bool // risk percent above 2.0
	WeakStop      bool // stop inside the structural level for the direction
}

// Evaluate scores a completed setup. A zero risk distance yields rr 0.
func Evaluate(s *State) Report {
	riskDistance := abs(s.Scenario.Entry - s.StopLoss)
	rewardDistance := abs(s.TakeProfit - s.Scenario.Entry)

	var rr float64
	if riskDistance > 0 {
		rr = rewardDistance / riskDistance
	}

	quality := QualityStrong
	switch {
	case rr < 1.5:
		quality = QualityPoor
	case rr < 2.0:
		quality = QualityAcceptable
	}

	weakStop := false
	if s.Direction == Long && s.StopLoss > s.Scenario.Support {
		weakStop = true
	}
	if s.Direction == Short && s.StopLoss < s.Scenario.Resistance {
		weakStop = true
	}

	return Report{
		RR:            rr,
		Quality:       quality,
		OversizedRisk: s.RiskPercent > 2.0,
		WeakStop:      weakStop,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// RenderFeedback builds the structured feedback block shown after stage 4.
func RenderFeedback(s *State, r Report, lang content.Language) string {
	if content.NormalizeLanguage(lang) == content.LangEnglish {
		return renderFeedbackEN(s, r)
	}
	return renderFeedbackAR(s, r)
}

func renderFeedbackEN(s *State, r Report) string {
	directionLabel := "Long"
	if s.Direction == Short {
		directionLabel = "Short"
	}
	lines := []string{
		"Simulation Review",
		fmt.Sprintf("- Direction: %s", directionLabel),
		fmt.Sprintf("- Entry: %.2f DZD", s.Scenario.Entry),
		fmt.Sprintf("- Stop-loss: %.2f DZD", s.StopLoss),
		fmt.Sprintf("- Take-profit: %.2f DZD", s.TakeProfit),
		fmt.Sprintf("- Reward to risk: %.2fR", r.RR),
		fmt.Sprintf("- Risk per trade: %.2f%%", s.RiskPercent),
	}
	switch r.Quality {
	case QualityPoor:
		lines = append(lines, "- R:R quality: ❌ weak for most systems. Improve the target or tighten the invalidation.")
	case QualityAcceptable:
		lines = append(lines, "- R:R quality: ✅ acceptable. Check it fits your historical win rate.")
	default:
		lines = append(lines, "- R:R quality: ✅ strong. Keep execution quality and discipline.")
	}
	if r.OversizedRisk {
		lines = append(lines, "- Risk size: ❌ oversized. Keep it between 0.5% and 2% per trade.")
	} else {
		lines = append(lines, "- Risk size: ✅ within a conservative educational range.")
	}
	if r.WeakStop {
		if s.Direction == Long {
			lines = append(lines, "- Stop placement: ❌ above a meaningful support. It may be too tight, near liquidity.")
		} else {
			lines = append(lines, "- Stop placement: ❌ below a meaningful resistance. Consider invalidation beyond structure.")
		}
	}
	lines = append(lines,
		"Process review: did the plan include context, an entry signal, invalidation, and a risk limit?",
		content.RiskReminder(content.LangEnglish),
	)
	return strings.Join(lines, "\n")
}

func renderFeedbackAR(s *State, r Report) string {
	directionLabel := "لونغ"
	if s.Direction == Short {
		directionLabel = "شورت"
	}
	lines := []string{
		"تقييم المحاكاة",
		fmt.Sprintf("- الاتجاه: %s", directionLabel),
		fmt.Sprintf("- الدخول: %.2f DZD", s.Scenario.Entry),
		fmt.Sprintf("- وقف الخسارة: %.2f DZD", s.StopLoss),
		fmt.Sprintf("- جني الربح: %.2f DZD", s.TakeProfit),
		fmt.Sprintf("- العائد إلى المخاطرة: %.2fR", r.RR),
		fmt.Sprintf("- المخاطرة لكل صفقة: %.2f%%", s.RiskPercent),
	}
	switch r.Quality {
	case QualityPoor:
		lines = append(lines, "- جودة R:R: ❌ ضعيفة لمعظم الأنظمة. حسّن العائد أو قلّل الإبطال.")
	case QualityAcceptable:
		lines = append(lines, "- جودة R:R: ✅ مقبولة. تأكد أنها مناسبة لنسبة نجاحك التاريخية.")
	default:
		lines = append(lines, "- جودة R:R: ✅ قوية. حافظ على جودة التنفيذ والانضباط.")
	}
	if r.OversizedRisk {
		lines = append(lines, "- حجم المخاطرة: ❌ مرتفع. الأفضل إبقاؤها بين 0.5% و2% للصفقة.")
	} else {
		lines = append(lines, "- حجم المخاطرة: ✅ ضمن نطاق تعليمي محافظ.")
	}
	if r.WeakStop {
		if s.Direction == Long {
			lines = append(lines, "- موضع الوقف: ❌ أعلى دعم مهم. قد يكون ضيقًا قرب السيولة.")
		} else {
			lines = append(lines, "- موضع الوقف: ❌ أسفل مقاومة مهمة. فكّر في إبطال أبعد من الهيكل.")
		}
	}
	lines = append(lines,
		"مراجعة العملية: هل تضمنت الخطة سياقًا وإشارة دخول وإبطالًا وحد مخاطرة؟",
		content.RiskReminder(content.LangArabic),
	)
	return strings.Join(lines, "\n")
}

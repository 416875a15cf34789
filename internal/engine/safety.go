package engine

import (
	"regexp"
	"strings"

	"github.com/israyx/sintrade/internal/content"
)

// unrealisticPatterns match requests for guaranteed-profit systems in
// either language.
var unrealisticPatterns = []*regexp.Regexp{
	regexp.MustCompile(`100\s*%\s*win`),
	regexp.MustCompile(`win\s*every\s*trade`),
	regexp.MustCompile(`guaranteed\s*(profit|strategy|signal)`),
	regexp.MustCompile(`no\s*loss`),
	regexp.MustCompile(`make\s*me\s*rich\s*(today|fast)`),
	regexp.MustCompile(`sure\s*signal`),
	regexp.MustCompile(`guarantee\s*profits`),
	regexp.MustCompile(`ربح\s*مضمون`),
	regexp.MustCompile(`بدون\s*خسارة`),
	regexp.MustCompile(`اربحني\s*(اليوم|بسرعة)`),
}

// IsUnrealisticRequest reports whether the text asks for certainty the
// market cannot give.
func IsUnrealisticRequest(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, p := range unrealisticPatterns {
		if p.MatchString(lowered) {
			return true
		}
	}
	return false
}

func safetyRefusal(lang content.Language) string {
	return tr(lang,
		"لا أستطيع تقديم أنظمة ربح مضمون أو توصيات يقينية. "+
			"لا توجد استراتيجية تربح كل صفقة، والخسائر جزء طبيعي من التداول.",
		"I can't provide guaranteed-profit systems or certain calls. "+
			"No strategy wins every trade; losses are a normal part of trading.")
}

// frustrationWords trigger the emotional-support checklist instead of
// normal routing.
var frustrationWords = []string{
	"frustrated", "lost money", "blew", "angry", "revenge trade",
	"متضايق", "خسرت", "معصب",
}

func isFrustrated(lowered string) bool {
	for _, w := range frustrationWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

func frustrationText(lang content.Language) string {
	return tr(lang,
		"الخسائر صعبة نفسيًا وهذا طبيعي. توقف قليلًا، خفف الحجم، "+
			"وراجع آخر صفقاتك قبل أي دخول جديد.\n\n"+
			"قائمة المراجعة:\n"+
			"- هل التزمت بقواعد دخولك؟\n"+
			"- هل كانت المخاطرة <= 2%؟\n"+
			"- هل كان وقف الخسارة منطقيًا؟\n"+
			"- هل العاطفة غلبت الخطة؟\n\n"+
			content.RiskReminder(lang),
		"Losses are emotionally hard and that's normal. Pause, reduce size, "+
			"and review your recent trades before any new entry.\n\n"+
			"Checklist:\n"+
			"- Did you follow your entry rules?\n"+
			"- Was risk <= 2%?\n"+
			"- Did the stop placement make sense?\n"+
			"- Did emotion override the plan?\n\n"+
			content.RiskReminder(lang))
}

package content

// Curated curriculum. Lessons are ordered; LessonsFor preserves that order so
// the next unfinished lesson is always well defined.
var lessonBank = []Lesson{
	{
		ID:        "B1",
		Level:     LevelBeginner,
		Title:     "What a Trade Really Is",
		Objective: "Understand that every trade is a risk decision before it is a profit opportunity.",
		BulletPoints: []string{
			"A trade has four parts: context, entry signal, invalidation, and risk limit.",
			"The invalidation point is the price that proves the idea wrong.",
			"Risk per trade is chosen before entry, never after.",
			"No setup removes the possibility of loss.",
		},
		Example: "Example: BTCDZD holds support at 118,500. A plan defines entry 120,000, invalidation below 118,000, and risk of 1% of the account.",
		Quiz: []QuizQuestion{
			{
				Prompt: "What must be defined before any entry?",
				Options: map[string]string{
					"A": "Invalidation point and risk limit",
					"B": "A guaranteed outcome",
					"C": "Maximum leverage",
					"D": "A social media signal",
				},
				Answer:      "A",
				Explanation: "Every trade needs invalidation and controlled risk.",
			},
			{
				Prompt: "What does the invalidation point represent?",
				Options: map[string]string{
					"A": "The price target",
					"B": "The price that proves the idea wrong",
					"C": "The broker's fee level",
					"D": "The daily high",
				},
				Answer:      "B",
				Explanation: "Invalidation is where the trade idea stops being valid.",
			},
		},
	},
	{
		ID:        "B2",
		Level:     LevelBeginner,
		Title:     "Position Sizing Basics",
		Objective: "Size positions from the stop distance, not from conviction.",
		BulletPoints: []string{
			"Decide the account risk percent first (0.5%-2% is a conservative range).",
			"Position size = account risk divided by stop distance.",
			"Wider stops mean smaller positions, not bigger losses.",
			"Doubling size after a loss is revenge trading, not strategy.",
		},
		Example: "Example: with a 100,000 DZD account risking 1%, and a stop 500 DZD away, the position risks 1,000 DZD, so size is 2 units.",
		Quiz: []QuizQuestion{
			{
				Prompt: "A wider stop-loss should lead to…",
				Options: map[string]string{
					"A": "A bigger position",
					"B": "A smaller position",
					"C": "No change in size",
					"D": "Removing the stop",
				},
				Answer:      "B",
				Explanation: "Size scales down as stop distance grows, keeping risk constant.",
			},
			{
				Prompt: "Which risk per trade fits a conservative plan?",
				Options: map[string]string{
					"A": "25%",
					"B": "10%",
					"C": "1%",
					"D": "Whatever feels right",
				},
				Answer:      "C",
				Explanation: "Small fixed risk keeps losing streaks survivable.",
			},
		},
	},
	{
		ID:        "B3",
		Level:     LevelBeginner,
		Title:     "The Trading Journal",
		Objective: "Review process quality instead of judging single outcomes.",
		BulletPoints: []string{
			"Record the plan before entry and the execution after exit.",
			"Grade rule-following, not profit.",
			"A profitable trade that broke the rules is a bad trade.",
			"Review the journal weekly to find repeated mistakes.",
		},
		Example: "Example: a journal entry notes the setup, planned stop, actual exit, and whether the plan was followed, regardless of the result.",
		Quiz: []QuizQuestion{
			{
				Prompt: "Which mindset is more professional?",
				Options: map[string]string{
					"A": "Win every trade",
					"B": "Process consistency over short-term outcomes",
					"C": "Double risk after a loss",
					"D": "Enter every opportunity",
				},
				Answer:      "B",
				Explanation: "Professional growth comes from repeatable process quality.",
			},
			{
				Prompt: "A winning trade that violated the plan is…",
				Options: map[string]string{
					"A": "A good trade",
					"B": "A bad trade",
					"C": "Irrelevant",
					"D": "Proof the rules are wrong",
				},
				Answer:      "B",
				Explanation: "Outcome and quality are separate; broken rules compound into losses.",
			},
		},
	},
	{
		ID:        "I1",
		Level:     LevelIntermediate,
		Title:     "Market Structure",
		Objective: "Read trends through swing highs and lows instead of indicators.",
		BulletPoints: []string{
			"An uptrend makes higher highs and higher lows.",
			"A break of the last higher low questions the uptrend.",
			"Ranges are defined by repeated reactions at both edges.",
			"Structure gives logical places for invalidation, not predictions.",
		},
		Example: "Example: ETHDZD prints higher lows at 9,800 and 10,100; a stop under 10,100 uses structure as invalidation.",
		Quiz: []QuizQuestion{
			{
				Prompt: "An uptrend is defined by…",
				Options: map[string]string{
					"A": "Higher highs and higher lows",
					"B": "A green moving average",
					"C": "Positive news",
					"D": "High volume only",
				},
				Answer:      "A",
				Explanation: "Structure, not indicators, defines trend.",
			},
			{
				Prompt: "Where does structure-based invalidation belong for a long?",
				Options: map[string]string{
					"A": "Above the last high",
					"B": "Below the last meaningful higher low",
					"C": "At the entry price",
					"D": "Nowhere",
				},
				Answer:      "B",
				Explanation: "Breaking the higher low breaks the bullish idea.",
			},
		},
	},
	{
		ID:        "I2",
		Level:     LevelIntermediate,
		Title:     "Support, Resistance, and Liquidity",
		Objective: "Place stops beyond structure, away from obvious liquidity pools.",
		BulletPoints: []string{
			"Support and resistance are zones of repeated reaction, not exact lines.",
			"Stops clustered right at obvious levels get swept.",
			"A stop belongs beyond the level that invalidates the idea.",
			"Confirmation at a level beats blind limit orders into it.",
		},
		Example: "Example: SOLDZD respects 21,000 as support three times; a long stop sits clearly below the zone, not at 20,999.",
		Quiz: []QuizQuestion{
			{
				Prompt: "Why avoid placing a stop exactly at an obvious support?",
				Options: map[string]string{
					"A": "Fees are higher there",
					"B": "Liquidity sweeps often run just past obvious levels",
					"C": "Brokers forbid it",
					"D": "It guarantees a loss",
				},
				Answer:      "B",
				Explanation: "Obvious levels attract stop hunts; invalidation belongs beyond the zone.",
			},
			{
				Prompt: "Support and resistance are best treated as…",
				Options: map[string]string{
					"A": "Exact prices",
					"B": "Zones of reaction",
					"C": "Indicator values",
					"D": "Random noise",
				},
				Answer:      "B",
				Explanation: "Reactions cluster in areas, not single ticks.",
			},
		},
	},
	{
		ID:        "I3",
		Level:     LevelIntermediate,
		Title:     "Risk/Reward Before Entry",
		Objective: "Filter trades by the ratio between reward distance and risk distance.",
		BulletPoints: []string{
			"R:R = distance to target divided by distance to stop.",
			"Below 1.5R most systems need an unrealistic win rate.",
			"2R and above gives room to be wrong often and still grow.",
			"Moving the stop to improve R:R on paper destroys the logic.",
		},
		Example: "Example: entry 100, stop 95, target 110 yields 10/5 = 2R, a strong ratio if the stop placement is structural.",
		Quiz: []QuizQuestion{
			{
				Prompt: "Entry 50, stop 48, target 56. The R:R is…",
				Options: map[string]string{
					"A": "1R",
					"B": "2R",
					"C": "3R",
					"D": "6R",
				},
				Answer:      "C",
				Explanation: "Reward 6 over risk 2 is 3R.",
			},
			{
				Prompt: "Tightening a stop only to improve the printed R:R…",
				Options: map[string]string{
					"A": "Improves the trade",
					"B": "Breaks the invalidation logic",
					"C": "Is required by exchanges",
					"D": "Removes risk",
				},
				Answer:      "B",
				Explanation: "The stop must sit where the idea fails, not where the ratio looks good.",
			},
		},
	},
	{
		ID:        "A1",
		Level:     LevelAdvanced,
		Title:     "Confluence and Trade Selection",
		Objective: "Demand multiple independent reasons before risking capital.",
		BulletPoints: []string{
			"Confluence stacks structure, level, and momentum agreement.",
			"Fewer, better trades beat constant participation.",
			"Every added filter lowers frequency and raises quality.",
			"A watchlist with alerts beats staring at charts.",
		},
		Example: "Example: a long idea aligns an uptrend, a retest of broken resistance, and a higher-timeframe support zone before entry.",
		Quiz: []QuizQuestion{
			{
				Prompt: "Confluence means…",
				Options: map[string]string{
					"A": "Entering on one strong indicator",
					"B": "Multiple independent reasons agreeing",
					"C": "Following a large account's call",
					"D": "Averaging down",
				},
				Answer:      "B",
				Explanation: "Independent agreement raises the quality of a setup.",
			},
			{
				Prompt: "Raising the selection bar usually…",
				Options: map[string]string{
					"A": "Lowers trade frequency and raises quality",
					"B": "Guarantees profit",
					"C": "Requires more leverage",
					"D": "Eliminates losses",
				},
				Answer:      "A",
				Explanation: "Selectivity trades quantity for quality.",
			},
		},
	},
	{
		ID:        "A2",
		Level:     LevelAdvanced,
		Title:     "Managing the Open Trade",
		Objective: "Pre-plan management so the position never depends on in-trade emotion.",
		BulletPoints: []string{
			"Define before entry what moves the stop and when.",
			"Partial exits at structure reduce variance without killing expectancy.",
			"Moving a stop further from price after entry is the cardinal sin.",
			"If the plan has no answer for a scenario, the plan is incomplete.",
		},
		Example: "Example: the plan moves the stop to break-even only after price closes beyond the first target zone, never before.",
		Quiz: []QuizQuestion{
			{
				Prompt: "Which action is never acceptable after entry?",
				Options: map[string]string{
					"A": "Taking a partial profit",
					"B": "Moving the stop further away from price",
					"C": "Closing the trade at the stop",
					"D": "Leaving the trade alone",
				},
				Answer:      "B",
				Explanation: "Widening a stop converts a planned loss into an unplanned one.",
			},
			{
				Prompt: "Trade management decisions belong…",
				Options: map[string]string{
					"A": "In the plan, before entry",
					"B": "To the heat of the moment",
					"C": "To social media polls",
					"D": "Only to winning trades",
				},
				Answer:      "A",
				Explanation: "Pre-commitment removes emotion from execution.",
			},
		},
	},
	{
		ID:        "A3",
		Level:     LevelAdvanced,
		Title:     "Expectancy and Losing Streaks",
		Objective: "Judge a system by expectancy across a sample, not by a week of results.",
		BulletPoints: []string{
			"Expectancy = (win rate x average win) - (loss rate x average loss).",
			"A 40% win rate with 2R winners is a solid system.",
			"Losing streaks are a statistical certainty, plan capital for them.",
			"Changing systems after three losses destroys any edge.",
		},
		Example: "Example: at 1% risk and a realistic 8-trade losing streak, the account draws down about 8%; the plan sizes risk so this is tolerable.",
		PremiumOnly: true,
		Quiz: []QuizQuestion{
			{
				Prompt: "A system wins 40% of trades at 2R average. It is…",
				Options: map[string]string{
					"A": "Unprofitable",
					"B": "Profitable in expectancy",
					"C": "Impossible",
					"D": "Only luck",
				},
				Answer:      "B",
				Explanation: "0.4*2 - 0.6*1 = 0.2R expected per trade.",
			},
			{
				Prompt: "Losing streaks in a sound system are…",
				Options: map[string]string{
					"A": "Proof it is broken",
					"B": "Statistically expected",
					"C": "Always avoidable",
					"D": "A reason to double risk",
				},
				Answer:      "B",
				Explanation: "Variance produces streaks even with a real edge.",
			},
		},
	},
	{
		ID:          "P1",
		Level:       LevelProfessional,
		Title:       "Building a Complete Playbook",
		Objective:   "Codify setups into written, testable playbook entries.",
		PremiumOnly: true,
		BulletPoints: []string{
			"Each playbook entry names context, trigger, invalidation, and management.",
			"If a setup cannot be written down, it cannot be reviewed.",
			"Tag every executed trade with its playbook entry.",
			"Retire entries whose live sample underperforms the backtest.",
		},
		Example: "Example: a 'range reclaim' playbook entry defines the failed breakdown, the reclaim close, the stop under the sweep low, and targets at the range mid and high.",
		Quiz: []QuizQuestion{
			{
				Prompt: "A playbook entry must include…",
				Options: map[string]string{
					"A": "Context, trigger, invalidation, management",
					"B": "Only a chart pattern name",
					"C": "A profit guarantee",
					"D": "The broker's name",
				},
				Answer:      "A",
				Explanation: "A setup is only complete with its full decision chain.",
			},
			{
				Prompt: "Why tag trades with their playbook entry?",
				Options: map[string]string{
					"A": "For tax reporting",
					"B": "To measure each setup's live performance",
					"C": "To share on social media",
					"D": "It is not useful",
				},
				Answer:      "B",
				Explanation: "Per-setup stats show which entries earn their place.",
			},
		},
	},
	{
		ID:          "P2",
		Level:       LevelProfessional,
		Title:       "Execution Under Pressure",
		Objective:   "Build routines that keep execution identical on good and bad days.",
		PremiumOnly: true,
		BulletPoints: []string{
			"A pre-session checklist removes improvisation.",
			"Daily loss limits end the session before tilt does damage.",
			"Size down after rule violations, not only after losses.",
			"Review emotional state as seriously as chart analysis.",
		},
		Example: "Example: after hitting a -2R daily limit, the platform is closed and the review is written the same evening, with no afternoon revenge session.",
		Quiz: []QuizQuestion{
			{
				Prompt: "The purpose of a daily loss limit is to…",
				Options: map[string]string{
					"A": "Guarantee daily profit",
					"B": "Stop the session before tilt compounds damage",
					"C": "Impress other traders",
					"D": "Satisfy the exchange",
				},
				Answer:      "B",
				Explanation: "Limits protect the account from emotional cascades.",
			},
			{
				Prompt: "After breaking a rule profitably, a professional…",
				Options: map[string]string{
					"A": "Repeats the violation",
					"B": "Sizes down and reviews the breach",
					"C": "Raises risk",
					"D": "Deletes the journal",
				},
				Answer:      "B",
				Explanation: "Violations are treated as losses of process quality.",
			},
		},
	},
	{
		ID:          "P3",
		Level:       LevelProfessional,
		Title:       "Portfolio-Level Risk and Correlation",
		Objective:   "Manage risk across simultaneous positions, not trade by trade.",
		PremiumOnly: true,
		BulletPoints: []string{
			"Correlated positions share one risk budget, not one each.",
			"Cap total open risk so a single market event cannot breach the daily limit.",
			"Scale exposure down when realized volatility expands.",
			"Track portfolio heat in R, not in currency.",
		},
		Example: "Example: long BTCDZD and long ETHDZD move together, so both trades draw from one 1R crypto-long budget instead of risking 1R each.",
		Quiz: []QuizQuestion{
			{
				Prompt: "Two highly correlated longs should be sized as…",
				Options: map[string]string{
					"A": "Independent positions with full risk each",
					"B": "One shared risk budget across both",
					"C": "Double size to capture the trend",
					"D": "Whatever feels right in the moment",
				},
				Answer:      "B",
				Explanation: "Correlated trades lose together; their risk adds up as one bet.",
			},
			{
				Prompt: "When realized volatility doubles, open exposure should…",
				Options: map[string]string{
					"A": "Stay the same",
					"B": "Double as well",
					"C": "Be reduced to keep risk in R constant",
					"D": "Be hedged with more leverage",
				},
				Answer:      "C",
				Explanation: "Wider moves mean the same size carries more risk.",
			},
		},
	},
}

// simulationBank seeds the wizard when generation is unavailable. Support is
// always below entry and resistance above it so structural stop checks stay
// meaningful.
var simulationBank = []SimulationScenario{
	{Symbol: "BTCDZD", Entry: 120000, Support: 118500, Resistance: 124000},
	{Symbol: "ETHDZD", Entry: 10400, Support: 10100, Resistance: 11050},
	{Symbol: "SOLDZD", Entry: 21600, Support: 21000, Resistance: 22800},
	{Symbol: "XRPDZD", Entry: 315, Support: 301, Resistance: 336},
}

// challengeBank seeds the daily challenge when generation is unavailable.
var challengeBank = []DailyChallenge{
	{
		Prompt:           "Daily Challenge: BTCDZD swept the 118,500 support and closed back above it within one candle. Describe how you would plan a trade around this event.",
		ExpectedKeywords: []string{"risk", "invalidation", "confirmation", "structure"},
	},
	{
		Prompt:           "Daily Challenge: ETHDZD has made three higher lows but momentum is fading near 11,000 resistance. Lay out your analysis and plan.",
		ExpectedKeywords: []string{"structure", "resistance", "invalidation", "risk"},
	},
	{
		Prompt:           "Daily Challenge: SOLDZD broke out of a two-week range on high volume and is retesting the range high. Explain how you would evaluate a long.",
		ExpectedKeywords: []string{"retest", "confirmation", "invalidation", "risk"},
	},
}

// LessonsFor returns the ordered lessons available at a level for an access
// tier. Free access sees only non-premium lessons.
func LessonsFor(level Level, access Access) []Lesson {
	var out []Lesson
	for _, l := range lessonBank {
		if l.Level != level {
			continue
		}
		if l.PremiumOnly && access != AccessPremium {
			continue
		}
		out = append(out, l)
	}
	return out
}

// AllLessons returns the full curated bank, for validation and tooling.
func AllLessons() []Lesson {
	return lessonBank
}

// Simulations returns the curated simulation scenarios.
func Simulations() []SimulationScenario {
	return simulationBank
}

// DailyChallenges returns the curated daily challenges.
func DailyChallenges() []DailyChallenge {
	return challengeBank
}

// LevelLabel renders a level for the given language.
func LevelLabel(level Level, lang Language) string {
	if NormalizeLanguage(lang) == LangEnglish {
		switch level {
		case LevelBeginner:
			return "Level 1 - Beginner"
		case LevelIntermediate:
			return "Level 2 - Intermediate"
		case LevelAdvanced:
			return "Level 3 - Advanced"
		case LevelProfessional:
			return "Level 4 - Professional"
		}
		return string(level)
	}
	switch level {
	case LevelBeginner:
		return "المستوى 1 - مبتدئ"
	case LevelIntermediate:
		return "المستوى 2 - متوسط"
	case LevelAdvanced:
		return "المستوى 3 - متقدم"
	case LevelProfessional:
		return "المستوى 4 - محترف"
	}
	return string(level)
}

// RiskReminder is the closing discipline line appended to feedback blocks.
func RiskReminder(lang Language) string {
	if NormalizeLanguage(lang) == LangEnglish {
		return "Reminder: this is education, not financial advice. Risk management comes before any profit target."
	}
	return "تذكير: هذا تعليم وليس نصيحة مالية. إدارة المخاطر تأتي قبل أي هدف ربح."
}

// PremiumLockMessage explains why no lessons are available at the tier.
func PremiumLockMessage(lang Language) string {
	if NormalizeLanguage(lang) == LangEnglish {
		return "This content is part of the premium track. Contact the developer to subscribe."
	}
	return "هذا المحتوى ضمن مسار البريميوم. تواصل مع المطور للاشتراك."
}

package engine

import "finadvisor/internal/model"

type opt struct {
	id    string
	label string
}

type treeStep struct {
	question string
	options  []opt
}

// trees holds the static per-goal question trees. Each goal has exactly
// StepCount(goal) question steps; the step after the last one is terminal.
var trees = map[model.GoalID][]treeStep{
	model.GoalEmergencyFund: {
		{
			question: "W jakim czasie chcesz zgromadzić fundusz awaryjny?",
			options: []opt{
				{"short", "W ciągu 6 miesięcy"},
				{"medium", "W ciągu roku"},
				{"long", "W ciągu 1-2 lat"},
			},
		},
		{
			question: "Ile miesięcznych wydatków chcesz pokryć funduszem awaryjnym?",
			options: []opt{
				{"three", "3 miesiące wydatków"},
				{"six", "6 miesięcy wydatków"},
				{"twelve", "12 miesięcy wydatków"},
			},
		},
		{
			question: "Jaki sposób oszczędzania preferujesz?",
			options: []opt{
				{"automatic", "Automatyczne odkładanie stałej kwoty"},
				{"percentage", "Odkładanie procentu dochodów"},
				{"surplus", "Odkładanie nadwyżek z budżetu"},
			},
		},
	},
	model.GoalDebtReduction: {
		{
			question: "Jaki rodzaj zadłużenia chcesz spłacić w pierwszej kolejności?",
			options: []opt{
				{"credit_card", "Karty kredytowe / Chwilówki (wysokie oprocentowanie)"},
				{"consumer", "Kredyty konsumpcyjne"},
				{"mortgage", "Kredyt hipoteczny"},
				{"student", "Kredyt studencki"},
				{"multiple", "Mam kilka różnych zobowiązań"},
			},
		},
		{
			question: "Jaka jest łączna kwota Twojego zadłużenia?",
			options: []opt{
				{"small", "Do 10,000 zł"},
				{"medium", "10,000 - 50,000 zł"},
				{"large", "50,000 - 200,000 zł"},
				{"very_large", "Powyżej 200,000 zł"},
			},
		},
		{
			question: "Jaką strategię spłaty zadłużenia preferujesz?",
			options: []opt{
				{"avalanche", "Najpierw najwyżej oprocentowane (metoda lawiny)"},
				{"snowball", "Najpierw najmniejsze kwoty (metoda kuli śnieżnej)"},
				{"consolidation", "Konsolidacja zadłużenia"},
				{"not_sure", "Nie jestem pewien/pewna"},
			},
		},
	},
	model.GoalHomePurchase: {
		{
			question: "W jakim czasie planujesz zakup nieruchomości?",
			options: []opt{
				{"short", "W ciągu 1-2 lat"},
				{"medium", "W ciągu 3-5 lat"},
				{"long", "W ciągu 5-10 lat"},
			},
		},
		{
			question: "Ile procent wartości nieruchomości planujesz zgromadzić jako wkład własny?",
			options: []opt{
				{"ten", "10% (minimalne wymaganie)"},
				{"twenty", "20% (standard)"},
				{"thirty_plus", "30% lub więcej"},
				{"full", "100% (zakup bez kredytu)"},
			},
		},
		{
			question: "Jaki jest Twój budżet na zakup nieruchomości?",
			options: []opt{
				{"small", "Do 300,000 zł"},
				{"medium", "300,000 - 600,000 zł"},
				{"large", "600,000 - 1,000,000 zł"},
				{"very_large", "Powyżej 1,000,000 zł"},
			},
		},
	},
	model.GoalRetirement: {
		{
			question: "W jakim wieku planujesz przejść na emeryturę?",
			options: []opt{
				{"early", "Wcześniej niż wiek emerytalny"},
				{"standard", "W standardowym wieku emerytalnym"},
				{"late", "Później niż wiek emerytalny"},
			},
		},
		{
			question: "Na jakim etapie życia zawodowego jesteś obecnie?",
			options: []opt{
				{"career_early", "Początek kariery (20-35 lat)"},
				{"career_mid", "Środek kariery (36-50 lat)"},
				{"career_late", "Późny etap kariery (51+ lat)"},
			},
		},
		{
			question: "Jakie formy oszczędzania na emeryturę rozważasz?",
			options: []opt{
				{"ike_ikze", "IKE/IKZE (indywidualne konta emerytalne)"},
				{"investment", "Własne inwestycje długoterminowe"},
				{"real_estate", "Nieruchomości na wynajem"},
				{"combined", "Strategia łączona"},
			},
		},
	},
	model.GoalEducation: {
		{
			question: "Kiedy planujesz rozpocząć edukację?",
			options: []opt{
				{"short", "W ciągu roku"},
				{"medium", "W ciągu 1-3 lat"},
				{"long", "W ciągu 3-5 lat"},
			},
		},
		{
			question: "Jaki rodzaj edukacji planujesz?",
			options: []opt{
				{"university", "Studia wyższe"},
				{"courses", "Kursy specjalistyczne"},
				{"certification", "Certyfikaty zawodowe"},
				{"child", "Oszczędzam na edukację dziecka"},
			},
		},
		{
			question: "Jaki jest szacowany koszt planowanej edukacji?",
			options: []opt{
				{"small", "Do 10,000 zł"},
				{"medium", "10,000 - 30,000 zł"},
				{"large", "30,000 - 100,000 zł"},
				{"very_large", "Powyżej 100,000 zł"},
			},
		},
	},
	model.GoalVacation: {
		{
			question: "Kiedy planujesz wyjazd?",
			options: []opt{
				{"short", "W ciągu 6 miesięcy"},
				{"medium", "W ciągu roku"},
				{"long", "W ciągu 1-2 lat"},
			},
		},
		{
			question: "Jaki jest szacowany koszt wyjazdu?",
			options: []opt{
				{"small", "Do 5,000 zł"},
				{"medium", "5,000 - 15,000 zł"},
				{"large", "15,000 - 30,000 zł"},
				{"very_large", "Powyżej 30,000 zł"},
			},
		},
		{
			question: "W jaki sposób planujesz sfinansować wyjazd?",
			options: []opt{
				{"savings", "Z bieżących oszczędności"},
				{"dedicated", "Specjalne konto dedykowane na ten cel"},
				{"combined", "Częściowo oszczędności, częściowo inne źródła"},
				{"credit", "Rozważam kredyt/pożyczkę"},
			},
		},
	},
	model.GoalOther: {
		{
			question: "Jaka kwota jest potrzebna do realizacji Twojego celu?",
			options: []opt{
				{"small", "Do 5,000 zł"},
				{"medium", "5,000 - 20,000 zł"},
				{"large", "20,000 - 50,000 zł"},
				{"very_large", "Powyżej 50,000 zł"},
			},
		},
		{
			question: "W jakim czasie chcesz osiągnąć ten cel?",
			options: []opt{
				{"short", "W ciągu 6 miesięcy"},
				{"medium", "W ciągu roku"},
				{"long", "W ciągu 1-3 lat"},
				{"very_long", "Powyżej 3 lat"},
			},
		},
		{
			question: "Jak wysoki priorytet ma dla Ciebie ten cel?",
			options: []opt{
				{"low", "Niski - mogę go odłożyć w czasie"},
				{"medium", "Średni - mogę być elastyczny/a"},
				{"high", "Wysoki - to dla mnie bardzo ważne"},
			},
		},
	},
}

// veryLongTimeframe is appended at step 0 for low-income contexts when the
// first step is a timeframe question
var veryLongTimeframe = opt{"very_long", "Powyżej 3 lat"}

// StepCount returns the number of question steps for a goal
func StepCount(goal model.GoalID) int {
	if steps, ok := trees[goal]; ok {
		return len(steps)
	}
	return len(trees[model.GoalEmergencyFund])
}

// Question returns the question text for a goal's step, empty past the end
func Question(goal model.GoalID, step int) string {
	steps := treeFor(goal)
	if step < 0 || step >= len(steps) {
		return ""
	}
	return steps[step].question
}

// OptionsFor returns the selectable options for a goal's step. A nil result
// signals "no further steps; ready to synthesize". The ordering is stable
// and deterministic for a given input; the only context-sensitive variation
// is an extra very-long timeframe option at step 0 for low income brackets.
func OptionsFor(goal model.GoalID, step int, path model.DecisionPath, ctx model.StepContext) []model.DecisionOption {
	steps := treeFor(goal)
	if step < 0 || step >= len(steps) {
		return nil
	}

	src := steps[step].options
	if step == 0 && ctx.IncomeBracket == "low" && isTimeframeStep(src) {
		src = append(append([]opt{}, src...), veryLongTimeframe)
	}

	out := make([]model.DecisionOption, len(src))
	for i, o := range src {
		out[i] = model.DecisionOption{
			ID:           o.id,
			Label:        o.label,
			Value:        o.id,
			QuestionText: steps[step].question,
		}
	}
	return out
}

func treeFor(goal model.GoalID) []treeStep {
	if steps, ok := trees[goal]; ok {
		return steps
	}
	return trees[model.GoalEmergencyFund]
}

func isTimeframeStep(options []opt) bool {
	for _, o := range options {
		if o.id == "short" {
			return true
		}
	}
	return false
}

package engine

import (
	"fmt"

	"finadvisor/internal/model"
)

// LocalSynthesize assembles a recommendation from goal-specific templates
// without any remote call. Selections are matched against known option-id
// sets rather than step indexes, so partial or reordered paths still map to
// the right template slots. The result is deterministic for a given path
// and is never empty.
func LocalSynthesize(goal model.GoalID, path model.DecisionPath) model.Recommendation {
	var rec model.Recommendation
	switch goal {
	case model.GoalEmergencyFund:
		rec = synthesizeEmergencyFund(path)
	case model.GoalDebtReduction:
		rec = synthesizeDebtReduction(path)
	case model.GoalHomePurchase:
		rec = synthesizeHomePurchase(path)
	case model.GoalRetirement:
		rec = synthesizeRetirement(path)
	case model.GoalEducation:
		rec = synthesizeEducation(path)
	case model.GoalVacation:
		rec = synthesizeVacation(path)
	case model.GoalOther:
		rec = synthesizeOtherGoal(path)
	default:
		rec = genericRecommendation()
	}
	rec.Goal = goal
	rec.Source = "local"
	return rec
}

// pathMatcher extracts template slot values from a path by selection id,
// consuming each decision at most once so ids shared between steps (e.g.
// "medium") resolve in path order.
type pathMatcher struct {
	path model.DecisionPath
	used []bool
}

func newMatcher(path model.DecisionPath) *pathMatcher {
	return &pathMatcher{path: path, used: make([]bool, len(path))}
}

// take returns the first unconsumed selection contained in ids, or def
func (m *pathMatcher) take(ids []string, def string) string {
	for i, d := range m.path {
		if m.used[i] {
			continue
		}
		for _, id := range ids {
			if d.Selection == id {
				m.used[i] = true
				return id
			}
		}
	}
	return def
}

func synthesizeEmergencyFund(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	timeframe := m.take([]string{"short", "medium", "long", "very_long"}, "medium")
	amount := m.take([]string{"three", "six", "twelve"}, "six")
	method := m.take([]string{"automatic", "percentage", "surplus"}, "automatic")

	months := map[string]int{"three": 3, "six": 6, "twelve": 12}[amount]
	tempo := map[string]string{
		"short": "wysokim", "medium": "średnim", "long": "niskim", "very_long": "niskim",
	}[timeframe]
	horizon := map[string]string{
		"short": "6 miesięcy", "medium": "roku", "long": "1-2 lat", "very_long": "ponad 3 lat",
	}[timeframe]
	methodDesc := map[string]string{
		"automatic":  "automatycznego odkładania stałej kwoty",
		"percentage": "odkładania stałego procentu dochodów",
		"surplus":    "odkładania nadwyżek budżetowych",
	}[method]

	steps := []string{
		fmt.Sprintf("Określ swoje miesięczne wydatki i pomnóż je przez %d, aby ustalić docelową kwotę funduszu", months),
		"Wybierz bezpieczne, płynne instrumenty finansowe (np. konto oszczędnościowe, lokaty krótkoterminowe)",
		"Korzystaj z funduszu tylko w prawdziwych sytuacjach awaryjnych",
	}
	var next []string
	switch method {
	case "percentage":
		steps = append(steps, "Zacznij od odkładania 15-20% miesięcznego dochodu")
		next = []string{
			"Przy dodatkowych dochodach (premie, nadgodziny) zachowaj tę samą zasadę procentową",
			"Zwiększaj procent oszczędności przy wzroście dochodów",
		}
	case "surplus":
		steps = append(steps, "Stwórz szczegółowy budżet miesięczny z kategorią 'nadwyżka'")
		next = []string{
			"Przeznaczaj całą nadwyżkę na fundusz awaryjny do momentu osiągnięcia celu",
			"Szukaj obszarów redukcji wydatków, aby zwiększyć nadwyżkę",
		}
	default: // automatic
		steps = append(steps, "Skorzystaj z funkcji automatycznych przelewów w swoim banku")
		next = []string{
			"Ustaw stałe zlecenie dzień po otrzymaniu wynagrodzenia",
			"Zacznij od odkładania 10% dochodu i stopniowo zwiększaj tę kwotę",
		}
	}

	return model.Recommendation{
		Summary: fmt.Sprintf(
			"Plan budowy funduszu awaryjnego na %d miesięcy wydatków w ciągu %s, przy %s tempie oszczędzania, z wykorzystaniem %s.",
			months, horizon, tempo, methodDesc),
		Steps:           steps,
		Timeline:        fmt.Sprintf("w ciągu %s", horizon),
		ExpectedOutcome: fmt.Sprintf("Fundusz awaryjny pokrywający %d miesięcy wydatków na bezpiecznym, płynnym koncie.", months),
		NextActions:     next,
	}
}

func synthesizeDebtReduction(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	debtType := m.take([]string{"credit_card", "consumer", "mortgage", "student", "multiple"}, "credit_card")
	amount := m.take([]string{"small", "medium", "large", "very_large"}, "medium")
	strategy := m.take([]string{"avalanche", "snowball", "consolidation", "not_sure"}, "avalanche")

	debtDesc := map[string]string{
		"credit_card": "wysoko oprocentowanych kart kredytowych i chwilówek",
		"consumer":    "kredytów konsumpcyjnych",
		"mortgage":    "kredytu hipotecznego",
		"student":     "kredytu studenckiego",
		"multiple":    "różnych zobowiązań",
	}[debtType]
	strategyName := map[string]string{
		"avalanche":     "metodą lawiny (najwyższe oprocentowanie najpierw)",
		"snowball":      "metodą kuli śnieżnej (najmniejsze kwoty najpierw)",
		"consolidation": "poprzez konsolidację zadłużenia",
		"not_sure":      "strategią dopasowaną do Twojej sytuacji",
	}[strategy]
	amountDesc := map[string]string{
		"small": "do 10 tys. zł", "medium": "10-50 tys. zł",
		"large": "50-200 tys. zł", "very_large": "powyżej 200 tys. zł",
	}[amount]

	steps := []string{
		"Stwórz pełną listę wszystkich zobowiązań z kwotami, oprocentowaniem i terminami",
		"Przygotuj budżet, który pozwoli przeznaczyć maksymalną kwotę na spłatę zadłużenia",
		"Utrzymuj regularne, terminowe spłaty wszystkich zobowiązań",
		"Unikaj zaciągania nowych długów w trakcie realizacji planu spłaty",
	}
	var next []string
	switch strategy {
	case "snowball":
		next = []string{
			"Uszereguj wszystkie długi według kwoty, od najmniejszej do największej",
			"Dodatkowe środki kieruj na zobowiązanie z najmniejszą kwotą",
		}
	case "consolidation":
		next = []string{
			"Porównaj oferty kredytów konsolidacyjnych od różnych banków",
			"Upewnij się, że efektywne oprocentowanie konsolidacji jest niższe niż obecne",
		}
	case "not_sure":
		next = []string{
			"Zidentyfikuj zobowiązania z najwyższym oprocentowaniem (zwykle karty kredytowe)",
			"Skup się na spłacie tych zobowiązań w pierwszej kolejności",
		}
	default: // avalanche
		next = []string{
			"Uszereguj wszystkie długi według oprocentowania, od najwyższego do najniższego",
			"Dodatkowe środki kieruj na zobowiązanie z najwyższym oprocentowaniem",
		}
	}

	return model.Recommendation{
		Summary: fmt.Sprintf("Plan spłaty %s (łącznie %s) %s.",
			debtDesc, amountDesc, strategyName),
		Steps:           steps,
		Timeline:        "pierwsze efekty w ciągu 3-6 miesięcy",
		ExpectedOutcome: "Systematyczna redukcja zadłużenia i odzyskanie płynności budżetu.",
		NextActions:     next,
	}
}

func synthesizeHomePurchase(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	timeframe := m.take([]string{"short", "medium", "long", "very_long"}, "medium")
	downPayment := m.take([]string{"ten", "twenty", "thirty_plus", "full"}, "twenty")
	budget := m.take([]string{"small", "medium", "large", "very_large"}, "medium")

	timeframeDesc := map[string]string{
		"short": "krótkim (1-2 lata)", "medium": "średnim (3-5 lat)", "long": "długim (5-10 lat)",
		"very_long": "odległym (powyżej 3 lat)",
	}[timeframe]
	downPaymentDesc := map[string]string{
		"ten": "10%", "twenty": "20%", "thirty_plus": "30% lub więcej", "full": "100% (bez kredytu)",
	}[downPayment]
	budgetDesc := map[string]string{
		"small":      "niższym budżecie (do 300 tys. zł)",
		"medium":     "średnim budżecie (300-600 tys. zł)",
		"large":      "wyższym budżecie (600 tys. - 1 mln zł)",
		"very_large": "wysokim budżecie (powyżej 1 mln zł)",
	}[budget]

	steps := []string{
		"Utwórz dedykowane konto oszczędnościowe na wkład własny",
		"Ustaw automatyczne przelewy na to konto w dniu wypłaty",
		"Monitoruj rynek nieruchomości i trendy cenowe w interesujących Cię lokalizacjach",
		"Sprawdź swoją zdolność kredytową i możliwości jej poprawy",
	}
	switch timeframe {
	case "short":
		steps = append(steps, "Maksymalizuj oszczędności - rozważ odkładanie 30-40% miesięcznych dochodów")
	case "long", "very_long":
		steps = append(steps, "Rozważ bardziej zróżnicowaną strategię inwestycyjną (fundusze, ETF-y)")
	default:
		steps = append(steps, "Ustaw plan systematycznego oszczędzania 20-25% miesięcznych dochodów")
	}

	next := []string{
		"Przygotuj dodatkowe środki na koszty transakcyjne (prowizje, podatki, notariusz)",
		"Skonsultuj się z doradcą kredytowym na wczesnym etapie planowania",
	}
	if downPayment == "ten" {
		next = append(next, "Przygotuj się na wymóg ubezpieczenia niskiego wkładu własnego")
	}

	return model.Recommendation{
		Summary: fmt.Sprintf(
			"Plan zakupu nieruchomości w %s okresie z wkładem własnym %s przy %s.",
			timeframeDesc, downPaymentDesc, budgetDesc),
		Steps:           steps,
		Timeline:        fmt.Sprintf("zakup w %s okresie", timeframeDesc),
		ExpectedOutcome: "Zgromadzony wkład własny i zdolność kredytowa gotowa na zakup nieruchomości.",
		NextActions:     next,
	}
}

func synthesizeRetirement(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	age := m.take([]string{"early", "standard", "late"}, "standard")
	stage := m.take([]string{"career_early", "career_mid", "career_late"}, "career_mid")
	vehicle := m.take([]string{"ike_ikze", "investment", "real_estate", "combined"}, "combined")

	ageDesc := map[string]string{
		"early": "wcześniejszej emerytury", "standard": "emerytury w standardowym wieku", "late": "późniejszej emerytury",
	}[age]
	stageDesc := map[string]string{
		"career_early": "wczesnym etapie kariery", "career_mid": "środkowym etapie kariery", "career_late": "późnym etapie kariery",
	}[stage]
	vehicleDesc := map[string]string{
		"ike_ikze": "IKE/IKZE", "investment": "własne inwestycje długoterminowe",
		"real_estate": "nieruchomości na wynajem", "combined": "strategię łączoną",
	}[vehicle]

	steps := []string{
		"Określ swoje potrzeby finansowe na emeryturze",
		"Ustal, ile musisz oszczędzać miesięcznie, aby osiągnąć cel",
		"Rozpocznij regularne wpłaty na wybrane instrumenty emerytalne",
		"Systematycznie weryfikuj i dostosowuj strategię do zmieniających się warunków",
	}
	switch stage {
	case "career_early":
		steps = append(steps, "Wykorzystaj długi horyzont inwestycyjny - rozważ wyższy udział akcji (70-80%)")
	case "career_late":
		steps = append(steps, "Dostosuj strategię do bardziej konserwatywnego portfela (30-40% akcji)")
	default:
		steps = append(steps, "Zwiększ kwotę oszczędności do 15-20% dochodów")
	}

	next := []string{
		"Nie polegaj wyłącznie na jednym źródle dochodu emerytalnego",
		"Buduj aktywa generujące pasywny dochód (nieruchomości, dywidendy, obligacje)",
	}
	if vehicle == "ike_ikze" || vehicle == "combined" {
		next = append(next, "Maksymalizuj roczne wpłaty na IKE/IKZE dla korzyści podatkowych")
	}

	return model.Recommendation{
		Summary: fmt.Sprintf(
			"Plan oszczędzania na %s - budowanie zabezpieczenia na %s poprzez %s.",
			ageDesc, stageDesc, vehicleDesc),
		Steps:           steps,
		Timeline:        "systematyczne oszczędzanie do wieku emerytalnego",
		ExpectedOutcome: "Zdywersyfikowane zabezpieczenie emerytalne dopasowane do etapu kariery.",
		NextActions:     next,
	}
}

func synthesizeEducation(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	timeframe := m.take([]string{"short", "medium", "long", "very_long"}, "medium")
	eduType := m.take([]string{"university", "courses", "certification", "child"}, "university")
	cost := m.take([]string{"small", "medium", "large", "very_large"}, "medium")

	timeframeDesc := map[string]string{
		"short": "krótkim czasie (w ciągu roku)", "medium": "średnim okresie (1-3 lata)", "long": "dłuższym okresie (3-5 lat)",
		"very_long": "odległym okresie (powyżej 3 lat)",
	}[timeframe]
	typeDesc := map[string]string{
		"university": "studiów wyższych", "courses": "kursów specjalistycznych",
		"certification": "certyfikatów zawodowych", "child": "edukacji dziecka",
	}[eduType]
	costDesc := map[string]string{
		"small": "do 10 tys. zł", "medium": "10-30 tys. zł",
		"large": "30-100 tys. zł", "very_large": "powyżej 100 tys. zł",
	}[cost]

	return model.Recommendation{
		Summary: fmt.Sprintf(
			"Plan finansowania %s w %s przy szacowanym koszcie %s.",
			typeDesc, timeframeDesc, costDesc),
		Steps: []string{
			"Zweryfikuj dokładny koszt wybranej ścieżki edukacji, w tym materiały i dojazdy",
			"Utwórz dedykowane subkonto na cel edukacyjny",
			"Podziel koszt na miesięczne raty oszczędnościowe do daty rozpoczęcia",
			"Sprawdź dostępne stypendia, dofinansowania i raty oferowane przez uczelnie",
		},
		Timeline:        fmt.Sprintf("start edukacji w %s", timeframeDesc),
		ExpectedOutcome: "Pokrycie kosztu edukacji bez sięgania po kredyt konsumpcyjny.",
		NextActions: []string{
			"Porównaj oferty instytucji edukacyjnych i terminy rekrutacji",
			"Ustaw automatyczny przelew na subkonto edukacyjne",
		},
	}
}

func synthesizeVacation(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	timeframe := m.take([]string{"short", "medium", "long", "very_long"}, "medium")
	cost := m.take([]string{"small", "medium", "large", "very_large"}, "medium")
	method := m.take([]string{"savings", "dedicated", "combined", "credit"}, "dedicated")

	timeframeDesc := map[string]string{
		"short": "w ciągu 6 miesięcy", "medium": "w ciągu roku", "long": "w ciągu 1-2 lat",
		"very_long": "w okresie powyżej 3 lat",
	}[timeframe]
	costDesc := map[string]string{
		"small": "do 5 tys. zł", "medium": "5-15 tys. zł",
		"large": "15-30 tys. zł", "very_large": "powyżej 30 tys. zł",
	}[cost]
	methodDesc := map[string]string{
		"savings": "z bieżących oszczędności", "dedicated": "z dedykowanego konta celowego",
		"combined": "z oszczędności i dodatkowych źródeł", "credit": "z rozważanym finansowaniem zewnętrznym",
	}[method]

	steps := []string{
		"Ustal realny budżet wyjazdu z rezerwą 10-15% na nieprzewidziane wydatki",
		"Podziel koszt na równe miesięczne kwoty do daty wyjazdu",
		"Rezerwuj przeloty i noclegi z wyprzedzeniem, aby obniżyć koszty",
	}
	next := []string{"Załóż osobne konto lub skarbonkę na cel wyjazdowy"}
	if method == "credit" {
		next = append(next, "Rozważ kredyt tylko jeśli masz pewność spłaty w krótkim terminie (3-6 miesięcy)")
	}

	return model.Recommendation{
		Summary: fmt.Sprintf(
			"Plan sfinansowania wyjazdu %s o koszcie %s, %s.",
			timeframeDesc, costDesc, methodDesc),
		Steps:           steps,
		Timeline:        fmt.Sprintf("wyjazd %s", timeframeDesc),
		ExpectedOutcome: "Wyjazd sfinansowany bez obciążania codziennego budżetu.",
		NextActions:     next,
	}
}

func synthesizeOtherGoal(path model.DecisionPath) model.Recommendation {
	m := newMatcher(path)
	amount := m.take([]string{"small", "medium", "large", "very_large"}, "medium")
	timeframe := m.take([]string{"short", "medium", "long", "very_long"}, "medium")
	priority := m.take([]string{"low", "medium", "high"}, "medium")

	amountDesc := map[string]string{
		"small": "do 5 tys. zł", "medium": "5-20 tys. zł",
		"large": "20-50 tys. zł", "very_large": "powyżej 50 tys. zł",
	}[amount]
	timeframeDesc := map[string]string{
		"short": "w ciągu 6 miesięcy", "medium": "w ciągu roku",
		"long": "w ciągu 1-3 lat", "very_long": "w okresie powyżej 3 lat",
	}[timeframe]
	priorityDesc := map[string]string{
		"low": "niskim", "medium": "średnim", "high": "wysokim",
	}[priority]

	return model.Recommendation{
		Summary: fmt.Sprintf(
			"Plan realizacji celu o wartości %s %s, przy %s priorytecie.",
			amountDesc, timeframeDesc, priorityDesc),
		Steps: []string{
			"Doprecyzuj kwotę i termin realizacji celu",
			"Podziel cel na miesięczne kwoty oszczędnościowe",
			"Wybierz instrument oszczędnościowy dopasowany do horyzontu",
			"Monitoruj postęp co miesiąc i koryguj plan przy zmianie sytuacji",
		},
		Timeline:        fmt.Sprintf("realizacja %s", timeframeDesc),
		ExpectedOutcome: "Cel sfinansowany zgodnie z założonym terminem i priorytetem.",
		NextActions: []string{
			"Ustaw automatyczny przelew na osobne konto celowe",
			"Zapisz cel i jego termin w widocznym miejscu, aby utrzymać motywację",
		},
	}
}

// genericRecommendation is the four-step fallback used when no goal rule
// matches
func genericRecommendation() model.Recommendation {
	return model.Recommendation{
		Summary: "Przygotowaliśmy ogólne rekomendacje finansowe dostosowane do Twojej sytuacji.",
		Steps: []string{
			"Stwórz budżet miesięczny i monitoruj wydatki",
			"Zbuduj fundusz awaryjny pokrywający 3-6 miesięcy wydatków",
			"Spłać zadłużenia o wysokim oprocentowaniu",
			"Regularnie odkładaj na długoterminowe cele",
		},
		Timeline:        "pierwsze efekty w ciągu 3 miesięcy",
		ExpectedOutcome: "Uporządkowane finanse i systematyczne oszczędzanie.",
		NextActions: []string{
			"Przeanalizuj wydatki z ostatnich 3 miesięcy",
			"Ustaw automatyczne przelewy na konto oszczędnościowe",
		},
	}
}

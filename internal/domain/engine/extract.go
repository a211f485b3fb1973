package engine

import (
	"regexp"
	"strconv"
	"strings"

	"arquitetura_xpto/internal/domain/entities"
)

// Sanity ranges for extracted areas, in m². Values outside the range are
// treated as "not found", never as an error.
const (
	maxBuiltArea = 100000
	maxLandArea  = 1000000
)

// ExtractedAttributes is the best-effort reading of a briefing. It is
// recomputed from scratch on every calculation, never patched.
type ExtractedAttributes struct {
	BuiltArea          *float64            `json:"built_area,omitempty"`
	LandArea           *float64            `json:"land_area,omitempty"`
	Typology           entities.Typology   `json:"typology"`
	TypologyResolved   bool                `json:"typology_resolved"`
	Subtype            string              `json:"subtype,omitempty"`
	Complexity         entities.Complexity `json:"complexity"`
	ComplexityResolved bool                `json:"complexity_resolved"`
	SpecialFeatures    []string            `json:"special_features,omitempty"`
	Confidence         float64             `json:"confidence"`
}

type areaField int

const (
	fieldBuiltArea areaField = iota
	fieldLandArea
)

// areaRule is one entry of the ordered extraction table. Rules are evaluated
// top to bottom and the first match per field wins.
type areaRule struct {
	field   areaField
	pattern *regexp.Regexp
}

var areaRules = []areaRule{
	{fieldBuiltArea, regexp.MustCompile(`(?:área|area)\s+constru[íi]da\s*(?:de\s+|com\s+|:\s*)?(\d+(?:[.,]\d+)?)`)},
	{fieldBuiltArea, regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:m²|m2|metros?\s+quadrados?)\s+(?:de\s+)?(?:área\s+|area\s+)?constru[íi]d\w*`)},
	{fieldBuiltArea, regexp.MustCompile(`construir\s+(?:uma?\s+\S+\s+(?:de|com)\s+)?(\d+(?:[.,]\d+)?)\s*(?:m²|m2|metros?\s+quadrados?)`)},
	{fieldLandArea, regexp.MustCompile(`(?:área|area)\s+(?:do\s+|de\s+)?terreno\s*(?:de\s+|com\s+|:\s*)?(\d+(?:[.,]\d+)?)`)},
	{fieldLandArea, regexp.MustCompile(`(?:terreno|lote)\s+(?:de\s+|com\s+)?(\d+(?:[.,]\d+)?)\s*(?:m²|m2|metros?\s+quadrados?)`)},
	{fieldBuiltArea, regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:m²|m2|metros?\s+quadrados?)`)},
}

// typologyKeywords are scored by word-boundary hit count; the highest score
// wins and ties break by declaration order.
var typologyKeywords = []struct {
	typology entities.Typology
	keywords []string
}{
	{entities.TypologyResidencial, []string{
		"casa", "residência", "residencia", "residencial", "apartamento",
		"sobrado", "cobertura", "moradia", "condomínio", "condominio",
		"house", "residence",
	}},
	{entities.TypologyComercial, []string{
		"loja", "escritório", "escritorio", "comercial", "restaurante",
		"hotel", "pousada", "shopping", "office", "store",
	}},
	{entities.TypologyIndustrial, []string{
		"galpão", "galpao", "fábrica", "fabrica", "industrial", "indústria",
		"industria", "armazém", "armazem", "warehouse", "factory",
	}},
	{entities.TypologyInstitucional, []string{
		"escola", "hospital", "clínica", "clinica", "igreja", "universidade",
		"creche", "institucional", "school",
	}},
}

// subtypeKeywords maps corpus words to the canonical subtype used for
// multiplier lookups. Only the winning typology's row is consulted.
var subtypeKeywords = map[entities.Typology][]struct {
	subtype  string
	keywords []string
}{
	entities.TypologyResidencial: {
		{"casa", []string{"casa", "house"}},
		{"apartamento", []string{"apartamento"}},
		{"sobrado", []string{"sobrado"}},
		{"cobertura", []string{"cobertura"}},
	},
	entities.TypologyComercial: {
		{"loja", []string{"loja", "store"}},
		{"escritorio", []string{"escritório", "escritorio", "office"}},
		{"restaurante", []string{"restaurante"}},
	},
	entities.TypologyIndustrial: {
		{"galpao", []string{"galpão", "galpao", "warehouse", "armazém", "armazem"}},
		{"fabrica", []string{"fábrica", "fabrica", "factory"}},
	},
	entities.TypologyInstitucional: {
		{"escola", []string{"escola", "school", "creche", "universidade"}},
		{"hospital", []string{"hospital", "clínica", "clinica"}},
	},
}

// complexityKeywords holds the three signal buckets. The bucket with
// strictly the most hits wins; anything else stays at the neutral default.
var complexityKeywords = []struct {
	complexity entities.Complexity
	keywords   []string
}{
	{entities.ComplexityBaixa, []string{
		"simples", "básico", "basico", "econômico", "economico", "modesto", "simple",
	}},
	{entities.ComplexityMedia, []string{
		"convencional", "moderado", "intermediário", "intermediario", "padrão", "padrao",
	}},
	{entities.ComplexityAlta, []string{
		"alto padrão", "alto padrao", "luxo", "luxuoso", "sofisticado",
		"premium", "complexo", "high-end", "requintado",
	}},
}

// featureKeywords maps corpus words to special-feature flags. Matches are
// additive, not mutually exclusive.
var featureKeywords = []struct {
	feature  string
	keywords []string
}{
	{"piscina", []string{"piscina", "pool"}},
	{"elevador", []string{"elevador", "elevator"}},
	{"energia_solar", []string{"energia solar", "painel solar", "painéis solares", "paineis solares", "fotovoltaico", "fotovoltaica"}},
	{"automacao", []string{"automação", "automacao", "casa inteligente", "smart home", "domótica", "domotica"}},
	{"home_theater", []string{"home theater", "home cinema", "sala de cinema"}},
	{"garagem_subsolo", []string{"subsolo", "garagem subterrânea", "garagem subterranea"}},
}

var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	add := func(kw string) {
		if _, ok := wordPatterns[kw]; !ok {
			wordPatterns[kw] = regexp.MustCompile(`(^|[^\pL\pN_])` + regexp.QuoteMeta(kw) + `($|[^\pL\pN_])`)
		}
	}
	for _, row := range typologyKeywords {
		for _, kw := range row.keywords {
			add(kw)
		}
	}
	for _, rows := range subtypeKeywords {
		for _, row := range rows {
			for _, kw := range row.keywords {
				add(kw)
			}
		}
	}
	for _, row := range complexityKeywords {
		for _, kw := range row.keywords {
			add(kw)
		}
	}
	for _, row := range featureKeywords {
		for _, kw := range row.keywords {
			add(kw)
		}
	}
	for _, row := range disciplineTriggers {
		for _, kw := range row.keywords {
			add(kw)
		}
	}
}

func countHits(corpus, keyword string) int {
	return len(wordPatterns[keyword].FindAllStringIndex(corpus, -1))
}

func hasHit(corpus, keyword string) bool {
	return wordPatterns[keyword].MatchString(corpus)
}

// ExtractAttributes reads project attributes out of a briefing. Structured
// answers take precedence over corpus matching; absence of signal produces
// defaults, never an error. Confidence is filled in later by the pipeline
// once disciplines are known.
func ExtractAttributes(b entities.Briefing) ExtractedAttributes {
	return extractWithCorpus(b, NormalizeBriefing(b))
}

func extractWithCorpus(b entities.Briefing, corpus string) ExtractedAttributes {
	attrs := ExtractedAttributes{
		Typology:   entities.TypologyResidencial,
		Complexity: entities.ComplexityMedia,
	}

	applyStructuredAnswers(&attrs, b.StructuredAnswers)
	extractAreas(&attrs, corpus)

	if !attrs.TypologyResolved {
		resolveTypology(&attrs, corpus)
	}
	if attrs.Subtype == "" {
		attrs.Subtype = resolveSubtype(attrs.Typology, corpus)
	}
	if !attrs.ComplexityResolved {
		resolveComplexity(&attrs, corpus)
	}
	attrs.SpecialFeatures = resolveFeatures(corpus)

	return attrs
}

func applyStructuredAnswers(attrs *ExtractedAttributes, answers map[string]string) {
	if v, ok := firstAnswer(answers, "area_construida", "built_area"); ok {
		if n, ok := parseArea(v, maxBuiltArea); ok {
			attrs.BuiltArea = &n
		}
	}
	if v, ok := firstAnswer(answers, "area_terreno", "land_area"); ok {
		if n, ok := parseArea(v, maxLandArea); ok {
			attrs.LandArea = &n
		}
	}
	if v, ok := firstAnswer(answers, "tipologia", "typology"); ok {
		if t, ok := parseTypology(v); ok {
			attrs.Typology = t
			attrs.TypologyResolved = true
		}
	}
	if v, ok := firstAnswer(answers, "complexidade", "complexity"); ok {
		if c, ok := parseComplexity(v); ok {
			attrs.Complexity = c
			attrs.ComplexityResolved = true
		}
	}
	if v, ok := firstAnswer(answers, "subtipo", "subtype"); ok {
		attrs.Subtype = strings.ToLower(strings.TrimSpace(v))
	}
}

func firstAnswer(answers map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := answers[k]; ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

func extractAreas(attrs *ExtractedAttributes, corpus string) {
	builtDone := attrs.BuiltArea != nil
	landDone := attrs.LandArea != nil

	for _, rule := range areaRules {
		if builtDone && landDone {
			return
		}
		if rule.field == fieldBuiltArea && builtDone {
			continue
		}
		if rule.field == fieldLandArea && landDone {
			continue
		}

		m := rule.pattern.FindStringSubmatch(corpus)
		if m == nil {
			continue
		}

		// First matching rule decides the field, even when the value fails
		// the sanity range: an absurd number means "not found", not "keep
		// looking for a smaller one".
		switch rule.field {
		case fieldBuiltArea:
			builtDone = true
			if n, ok := parseArea(m[1], maxBuiltArea); ok {
				attrs.BuiltArea = &n
			}
		case fieldLandArea:
			landDone = true
			if n, ok := parseArea(m[1], maxLandArea); ok {
				attrs.LandArea = &n
			}
		}
	}
}

func parseArea(raw string, max float64) (float64, bool) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		// Brazilian notation: dot as thousands separator, comma as decimal.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if n <= 0 || n >= max {
		return 0, false
	}
	return n, true
}

func parseTypology(raw string) (entities.Typology, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "residencial", "residential":
		return entities.TypologyResidencial, true
	case "comercial", "commercial":
		return entities.TypologyComercial, true
	case "industrial":
		return entities.TypologyIndustrial, true
	case "institucional", "institutional":
		return entities.TypologyInstitucional, true
	}
	return "", false
}

func parseComplexity(raw string) (entities.Complexity, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "baixa", "low":
		return entities.ComplexityBaixa, true
	case "media", "média", "medium":
		return entities.ComplexityMedia, true
	case "alta", "high":
		return entities.ComplexityAlta, true
	case "muito_alta", "muito alta", "very_high", "very high":
		return entities.ComplexityMuitoAlta, true
	}
	return "", false
}

func resolveTypology(attrs *ExtractedAttributes, corpus string) {
	best := -1
	bestScore := 0
	for i, row := range typologyKeywords {
		score := 0
		for _, kw := range row.keywords {
			score += countHits(corpus, kw)
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		attrs.Typology = typologyKeywords[best].typology
		attrs.TypologyResolved = true
	}
	// Zero hits keeps the residential default with TypologyResolved=false,
	// which drags the confidence score down.
}

func resolveSubtype(typology entities.Typology, corpus string) string {
	for _, row := range subtypeKeywords[typology] {
		for _, kw := range row.keywords {
			if hasHit(corpus, kw) {
				return row.subtype
			}
		}
	}
	return ""
}

func resolveComplexity(attrs *ExtractedAttributes, corpus string) {
	scores := make([]int, len(complexityKeywords))
	for i, row := range complexityKeywords {
		for _, kw := range row.keywords {
			scores[i] += countHits(corpus, kw)
		}
	}

	best := -1
	bestScore := 0
	tie := false
	for i, score := range scores {
		if score == 0 {
			continue
		}
		switch {
		case score > bestScore:
			best, bestScore, tie = i, score, false
		case score == bestScore:
			tie = true
		}
	}
	// Only a strict winner moves the needle; ties and all-zero stay on the
	// neutral default.
	if best >= 0 && !tie {
		attrs.Complexity = complexityKeywords[best].complexity
		attrs.ComplexityResolved = true
	}
}

func resolveFeatures(corpus string) []string {
	var features []string
	for _, row := range featureKeywords {
		for _, kw := range row.keywords {
			if hasHit(corpus, kw) {
				features = append(features, row.feature)
				break
			}
		}
	}
	return features
}

package game

import "flag-quiz-service/internal/domain"

// fallbackSimilarCount is how many random countries stand in for a country without a group.
const fallbackSimilarCount = 10

// SimilarityGroup is a named set of countries whose flags share visual traits.
type SimilarityGroup struct {
	Name  string
	Codes []string
}

// SimilarityGroups may reference codes missing from a catalog; those are ignored.
var SimilarityGroups = []SimilarityGroup{
	{Name: "nordic-cross", Codes: []string{"SE", "NO", "DK", "FI", "IS"}},
	{Name: "pan-arab", Codes: []string{"EG", "AE", "SA", "JO", "SY", "IQ", "KW", "SD", "YE"}},
	{Name: "vertical-tricolor", Codes: []string{"FR", "IT", "IE", "BE", "MX", "RO", "TD"}},
	{Name: "horizontal-tricolor", Codes: []string{"DE", "NL", "RU", "AT", "LU", "HU", "BG", "LT", "EE"}},
	{Name: "red-white-bicolor", Codes: []string{"PL", "ID", "MC", "SG", "AT"}},
	{Name: "stars-and-stripes", Codes: []string{"US", "MY", "LR", "CL", "CU", "PR"}},
	{Name: "union-jack", Codes: []string{"GB", "AU", "NZ", "FJ", "TV"}},
	{Name: "southern-cross", Codes: []string{"AU", "NZ", "BR", "PG", "WS"}},
	{Name: "gran-colombia", Codes: []string{"CO", "EC", "VE"}},
	{Name: "crescent", Codes: []string{"TR", "TN", "DZ", "PK", "MY", "AZ"}},
	{Name: "central-disc", Codes: []string{"JP", "BD", "KR", "LA", "PW"}},
	{Name: "pan-african", Codes: []string{"ZA", "KE", "NG", "GH", "ET", "SN", "CM", "ML", "GN", "MA"}},
	{Name: "blue-white-stripes", Codes: []string{"AR", "GR", "IL", "UY", "SV", "NI", "HN"}},
	{Name: "red-with-stars", Codes: []string{"CN", "VN", "TH", "PH"}},
}

var groupsByCode = func() map[string][]int {
	idx := make(map[string][]int)
	for i, g := range SimilarityGroups {
		for _, code := range g.Codes {
			idx[code] = append(idx[code], i)
		}
	}
	return idx
}()

// SimilarGroupNames returns the names of the groups the code belongs to.
func SimilarGroupNames(code string) []string {
	names := make([]string, 0, len(groupsByCode[code]))
	for _, i := range groupsByCode[code] {
		names = append(names, SimilarityGroups[i].Name)
	}
	return names
}

// FindSimilarFlags returns the co-members of every group the country belongs
// to, in catalog order. A country without a group gets up to ten random
// countries instead.
func FindSimilarFlags(src Source, country domain.Country, all []domain.Country) []domain.Country {
	groups := groupsByCode[country.Code]
	if len(groups) == 0 {
		others := make([]domain.Country, 0, len(all))
		for _, c := range all {
			if c.Code != country.Code {
				others = append(others, c)
			}
		}
		others = Shuffle(src, others)
		if len(others) > fallbackSimilarCount {
			others = others[:fallbackSimilarCount]
		}
		return others
	}

	members := make(map[string]struct{})
	for _, i := range groups {
		for _, code := range SimilarityGroups[i].Codes {
			members[code] = struct{}{}
		}
	}
	delete(members, country.Code)

	out := make([]domain.Country, 0, len(members))
	for _, c := range all {
		if _, ok := members[c.Code]; ok {
			out = append(out, c)
		}
	}
	return out
}

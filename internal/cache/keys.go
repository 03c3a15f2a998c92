package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const (
	reportKeyPrefix = "skillgap:report:"
	fitKeyPrefix    = "skillgap:fit:"
)

type reportKeyInput struct {
	Catalog   string   `json:"catalog"`
	Position  string   `json:"position"`
	Skills    []string `json:"skills"`
	Years     int      `json:"years"`
	Education string   `json:"education"`
	Matcher   string   `json:"matcher"`
}

func normalizeValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func hashKey(in reportKeyInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// ReportKey identifies a report by its inputs. skills must already be the
// candidate's normalized, sorted skill set. education is echoed verbatim in
// the report, so it is keyed exactly as given.
func ReportKey(catalogFingerprint, position string, skills []string, years int, education, matcher string) string {
	return reportKeyPrefix + hashKey(reportKeyInput{
		Catalog:   catalogFingerprint,
		Position:  normalizeValue(position),
		Skills:    skills,
		Years:     years,
		Education: education,
		Matcher:   matcher,
	})
}

// FitKey identifies a cross-position ranking by the candidate skill set
func FitKey(catalogFingerprint string, skills []string, matcher string) string {
	return fitKeyPrefix + hashKey(reportKeyInput{Catalog: catalogFingerprint, Skills: skills, Matcher: matcher})
}

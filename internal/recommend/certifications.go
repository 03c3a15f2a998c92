package recommend

import (
	"strings"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

// MaxCertifications caps the certification list of a recommendation set
const MaxCertifications = 5

var positionCertifications = map[string][]types.Certification{
	"data_science": {
		{Name: "AWS Certified Data Scientist", Provider: "AWS", Level: "Associate"},
		{Name: "Microsoft Certified: Azure Data Scientist", Provider: "Microsoft", Level: "Associate"},
		{Name: "Google Cloud Data Engineer", Provider: "Google", Level: "Associate"},
	},
	"web_development": {
		{Name: "AWS Certified Developer", Provider: "AWS", Level: "Associate"},
		{Name: "Microsoft Certified: Azure Developer", Provider: "Microsoft", Level: "Associate"},
		{Name: "MongoDB Certified Developer", Provider: "MongoDB", Level: "Associate"},
	},
	"devops": {
		{Name: "AWS Certified DevOps Engineer", Provider: "AWS", Level: "Professional"},
		{Name: "Certified Kubernetes Administrator", Provider: "CNCF", Level: "Professional"},
		{Name: "Docker Certified Associate", Provider: "Docker", Level: "Associate"},
	},
}

var skillCertifications = map[string][]types.Certification{
	"aws":        {{Name: "AWS Cloud Practitioner", Provider: "AWS", Level: "Foundation"}},
	"docker":     {{Name: "Docker Certified Associate", Provider: "Docker", Level: "Associate"}},
	"kubernetes": {{Name: "Certified Kubernetes Administrator", Provider: "CNCF", Level: "Professional"}},
	"python":     {{Name: "PCAP: Certified Associate in Python Programming", Provider: "Python Institute", Level: "Associate"}},
}

// Certifications lists the position's certifications followed by those of each
// missing required then advanced skill, in skill order. Duplicates are kept and
// the list is cut at MaxCertifications.
func Certifications(position string, gap *types.GapAnalysis) []types.Certification {
	certs := make([]types.Certification, 0, MaxCertifications)
	certs = append(certs, positionCertifications[position]...)

	missing := make([]string, 0, len(gap.MissingRequiredSkills)+len(gap.MissingAdvancedSkills))
	missing = append(missing, gap.MissingRequiredSkills...)
	missing = append(missing, gap.MissingAdvancedSkills...)
	for _, skill := range missing {
		certs = append(certs, skillCertifications[strings.ToLower(skill)]...)
	}

	if len(certs) > MaxCertifications {
		certs = certs[:MaxCertifications]
	}
	return certs
}

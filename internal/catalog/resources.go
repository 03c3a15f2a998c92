package catalog

import "github.com/jonathan/skillgap-advisor/internal/types"

// DefaultResources returns the built-in learning resource table, keyed by skill name.
// Keys use underscores for multi-word skills, so only exact catalog names match.
func DefaultResources() map[string]types.LearningResource {
	return map[string]types.LearningResource{
		"python": {
			Courses: []types.Course{
				{Name: "Python for Everybody", Platform: "Coursera", Level: "Beginner", Duration: "4 weeks"},
				{Name: "Complete Python Bootcamp", Platform: "Udemy", Level: "Beginner", Duration: "22 hours"},
				{Name: "Python Programming", Platform: "edX", Level: "Intermediate", Duration: "6 weeks"},
			},
			Books: []types.Book{
				{Title: "Python Crash Course", Author: "Eric Matthes", Difficulty: "Beginner"},
				{Title: "Automate the Boring Stuff", Author: "Al Sweigart", Difficulty: "Beginner"},
				{Title: "Fluent Python", Author: "Luciano Ramalho", Difficulty: "Advanced"},
			},
			Practice: []string{
				"LeetCode Python problems",
				"HackerRank Python challenges",
				"Codecademy Python track",
			},
		},
		"sql": {
			Courses: []types.Course{
				{Name: "SQL for Data Science", Platform: "Coursera", Level: "Beginner", Duration: "3 weeks"},
				{Name: "Complete SQL Bootcamp", Platform: "Udemy", Level: "Beginner", Duration: "8 hours"},
			},
			Books: []types.Book{
				{Title: "Learning SQL", Author: "Alan Beaulieu", Difficulty: "Beginner"},
				{Title: "SQL in 10 Minutes", Author: "Ben Forta", Difficulty: "Beginner"},
			},
			Practice: []string{
				"SQLZoo exercises",
				"LeetCode Database problems",
				"HackerRank SQL challenges",
			},
		},
		"machine_learning": {
			Courses: []types.Course{
				{Name: "Machine Learning by Andrew Ng", Platform: "Coursera", Level: "Intermediate", Duration: "11 weeks"},
				{Name: "Machine Learning A-Z", Platform: "Udemy", Level: "Beginner", Duration: "44 hours"},
			},
			Books: []types.Book{
				{Title: "Hands-On Machine Learning", Author: "Aurélien Géron", Difficulty: "Intermediate"},
				{Title: "Introduction to Machine Learning", Author: "Ethem Alpaydin", Difficulty: "Beginner"},
			},
			Practice: []string{
				"Kaggle competitions",
				"UCI Machine Learning Repository",
				"TensorFlow/PyTorch tutorials",
			},
		},
		"docker": {
			Courses: []types.Course{
				{Name: "Docker Mastery", Platform: "Udemy", Level: "Beginner", Duration: "14 hours"},
				{Name: "Docker for Developers", Platform: "Pluralsight", Level: "Intermediate", Duration: "5 hours"},
			},
			Practice: []string{
				"Dockerize your existing applications",
				"Docker Hub explore",
				"Play with Docker (online playground)",
			},
		},
		"kubernetes": {
			Courses: []types.Course{
				{Name: "Kubernetes for Developers", Platform: "Udemy", Level: "Intermediate", Duration: "13 hours"},
				{Name: "Certified Kubernetes Administrator", Platform: "CNCF", Level: "Advanced", Duration: "self-paced"},
			},
			Practice: []string{
				"Kubernetes Katacoda",
				"Minikube local setup",
				"Kubernetes official documentation tutorials",
			},
		},
		"react": {
			Courses: []types.Course{
				{Name: "Modern React with Redux", Platform: "Udemy", Level: "Intermediate", Duration: "48 hours"},
				{Name: "React - The Complete Guide", Platform: "Udemy", Level: "Beginner", Duration: "40 hours"},
			},
			Practice: []string{
				"React official tutorial",
				"Build a React project from scratch",
				"React documentation exercises",
			},
		},
		"javascript": {
			Courses: []types.Course{
				{Name: "JavaScript: Understanding the Weird Parts", Platform: "Udemy", Level: "Intermediate", Duration: "11 hours"},
				{Name: "JavaScript Algorithms", Platform: "freeCodeCamp", Level: "Intermediate", Duration: "self-paced"},
			},
			Practice: []string{
				"JavaScript30",
				"Codewars JavaScript challenges",
				"Frontend Mentor projects",
			},
		},
	}
}

package advisor

import (
	"math/rand/v2"
	"sync"
)

// MultipleChoice is a single aptitude or technical question
type MultipleChoice struct {
	Question string   `json:"q"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

var aptitudeQuestions = []MultipleChoice{
	{Question: "What is the next number in the series: 2, 6, 12, 20, 30, ...?", Options: []string{"40", "42", "44", "48"}, Correct: "42"},
	{Question: "If A is the brother of B; B is the sister of C; and C is the father of D, how is D related to A?", Options: []string{"Niece", "Nephew", "Brother", "Cannot be determined"}, Correct: "Cannot be determined"},
	{Question: "A train running at the speed of 60 km/hr crosses a pole in 9 seconds. What is the length of the train?", Options: []string{"120 m", "150 m", "180 m", "324 m"}, Correct: "150 m"},
	{Question: "Look at this series: 7, 10, 8, 11, 9, 12, ... What number should come next?", Options: []string{"7", "10", "12", "13"}, Correct: "10"},
	{Question: "Which word does NOT belong with the others?", Options: []string{"Parsley", "Basil", "Dill", "Mayonnaise"}, Correct: "Mayonnaise"},
}

var technicalQuestions = []MultipleChoice{
	{Question: "What does HTML stand for?", Options: []string{"Hyper Text Markup Language", "High Tech Markup Language", "Hyper Tabular Markup Language", "None of these"}, Correct: "Hyper Text Markup Language"},
	{Question: "Which language is used for styling web pages?", Options: []string{"HTML", "JQuery", "CSS", "XML"}, Correct: "CSS"},
	{Question: "What is React.js?", Options: []string{"Server-side framework", "User Interface library", "A Database", "An OS"}, Correct: "User Interface library"},
	{Question: "Which symbol is used for comments in Python?", Options: []string{"//", "/* */", "#", "--"}, Correct: "#"},
	{Question: "What does SQL stand for?", Options: []string{"Structured Question Language", "Structured Query Language", "Strong Query Language", "None of these"}, Correct: "Structured Query Language"},
}

var codingProblems = []string{
	"Write a function `twoSum(nums, target)` that returns indices of the two numbers such that they add up to target.",
	"Write a function to check if a given string is a Palindrome.",
	"Implement a function to reverse a linked list.",
	"Write a program to find the factorial of a number using recursion.",
	"Given an array of integers, find the maximum subarray sum (Kadane's Algorithm).",
}

var interviewQuestions = []string{
	"Tell me about yourself and your background.",
	"Why do you want to work for this company?",
	"Describe a challenging project you worked on and how you handled it.",
	"Where do you see yourself in 5 years?",
	"What are your greatest strengths and weaknesses?",
}

// QuestionBank serves offline practice questions. Safe for concurrent use.
type QuestionBank struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuestionBank creates a bank drawing from src; nil uses a random seed
func NewQuestionBank(src rand.Source) *QuestionBank {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &QuestionBank{rng: rand.New(src)}
}

// IntN returns a value in [0, n)
func (b *QuestionBank) IntN(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.IntN(n)
}

// RandomAptitude returns a copy of one aptitude question
func (b *QuestionBank) RandomAptitude() MultipleChoice {
	return cloneChoice(aptitudeQuestions[b.IntN(len(aptitudeQuestions))])
}

// RandomTechnical returns a copy of one technical question
func (b *QuestionBank) RandomTechnical() MultipleChoice {
	return cloneChoice(technicalQuestions[b.IntN(len(technicalQuestions))])
}

// RandomCoding returns one coding problem statement
func (b *QuestionBank) RandomCoding() string {
	return codingProblems[b.IntN(len(codingProblems))]
}

// RandomInterview returns one behavioral interview question
func (b *QuestionBank) RandomInterview() string {
	return interviewQuestions[b.IntN(len(interviewQuestions))]
}

func cloneChoice(q MultipleChoice) MultipleChoice {
	q.Options = append([]string(nil), q.Options...)
	return q
}

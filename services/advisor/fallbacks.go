package advisor

import (
	"fmt"
	"strings"
)

// ChatFallbackMessage is the assistant reply used when no model answers
const ChatFallbackMessage = "I'm having trouble connecting to the AI right now, but I can still help you browse jobs!"

// PlanFailedMessage is returned when the plan could not be produced
const PlanFailedMessage = "Failed to generate plan due to AI quota or error."

func chatFallback() map[string]any {
	return map[string]any{
		"response":    ChatFallbackMessage,
		"roles":       []any{},
		"suggestions": []any{"Search Jobs", "Upload Resume"},
	}
}

type prepDay struct {
	Day              int      `json:"day"`
	Topic            string   `json:"topic"`
	Subtopics        []string `json:"subtopics"`
	Priority         string   `json:"priority"`
	Resources        []string `json:"resources"`
	PracticeQuestion string   `json:"practice_question"`
}

type prepWeek struct {
	WeekNumber int       `json:"week_number"`
	Theme      string    `json:"theme"`
	Days       []prepDay `json:"days"`
}

type prepInsights struct {
	HiringTrend     string   `json:"hiring_trend"`
	CommonRounds    []string `json:"common_rounds"`
	FrequentTopics  []string `json:"frequent_topics"`
	DifficultyLevel string   `json:"difficulty_level"`
}

type prepPlan struct {
	Insights prepInsights `json:"insights"`
	Weeks    []prepWeek   `json:"weeks"`
}

func companyPlanFallback(companyName string) prepPlan {
	return prepPlan{
		Insights: prepInsights{
			HiringTrend: fmt.Sprintf("%s has been focusing on Data Structures, System Design, and practical problem-solving skills over the last 3 years.", companyName),
			CommonRounds: []string{
				"Round 1: Online Coding Assessment (HackerRank/CodeSignal)",
				"Round 2: Technical Interview (DSA)",
				"Round 3: System Design / Managerial Round",
			},
			FrequentTopics:  []string{"Arrays & Strings", "Dynamic Programming", "Graphs", "SQL", "OOD Principles"},
			DifficultyLevel: "Medium-Hard",
		},
		Weeks: []prepWeek{
			{
				WeekNumber: 1,
				Theme:      "Core Data Structures & Algorithms",
				Days: []prepDay{
					{Day: 1, Topic: "Arrays & Hashing", Subtopics: []string{"Two Sum", "Sliding Window", "Prefix Sum"}, Priority: "High", Resources: []string{"LeetCode Top Interview Questions"}, PracticeQuestion: "Find the contiguous subarray with the largest sum."},
					{Day: 2, Topic: "Linked Lists & Strings", Subtopics: []string{"Fast & Slow Pointers", "String Manipulation"}, Priority: "Medium", Resources: []string{"NeetCode Roadmap"}, PracticeQuestion: "Reverse a linked list in groups of size K."},
				},
			},
			{
				WeekNumber: 2,
				Theme:      "Advanced Algorithms",
				Days: []prepDay{
					{Day: 1, Topic: "Trees & Graphs", Subtopics: []string{"BFS/DFS", "Topological Sort", "Shortest Path"}, Priority: "High", Resources: []string{"GeeksforGeeks Graph Series"}, PracticeQuestion: "Number of Islands."},
				},
			},
			{
				WeekNumber: 3,
				Theme:      "System Design & Databases",
				Days: []prepDay{
					{Day: 1, Topic: "Low Level Design", Subtopics: []string{"Class Diagrams", "Design Patterns"}, Priority: "Medium", Resources: []string{"Head First Design Patterns"}, PracticeQuestion: "Design a Parking Lot system."},
				},
			},
			{
				WeekNumber: 4,
				Theme:      "Mock Interviews & Review",
				Days: []prepDay{
					{Day: 1, Topic: "Full Mock Test", Subtopics: []string{"Time Management", "Communication"}, Priority: "Critical", Resources: []string{"Pramp / InterviewBit"}, PracticeQuestion: "Solve 3 problems in 60 mins."},
				},
			},
		},
	}
}

func reportCardFallback() map[string]any {
	return map[string]any{
		"readiness_score": 72,
		"status_label":    "Industry Ready",
		"score_breakdown": map[string]any{
			"Resume Quality":    85,
			"Skill Set":         70,
			"Project Portfolio": 65,
			"Job Market Match":  75,
			"Interview Prep":    60,
			"Consistency":       80,
		},
		"module_usage": []any{
			map[string]any{"name": "Resume Analyzer", "status": "Completed", "completion": 100, "last_run": "Today", "outcome": "Score: 85/100", "score_contribution": "+20"},
			map[string]any{"name": "Skill Gap Analysis", "status": "Completed", "completion": 100, "last_run": "Yesterday", "outcome": "Identified 3 missing skills", "score_contribution": "+15"},
			map[string]any{"name": "Job Search", "status": "Pending", "completion": 40, "last_run": "2 days ago", "outcome": "Browsed 5 roles", "score_contribution": "+5"},
		},
		"current_snapshot": map[string]any{
			"predicted_role": "Data Analyst / SDE",
			"domain_fit":     "High",
			"salary_range":   "$65k - $90k",
			"top_companies":  []any{"Accenture", "Deloitte", "Capgemini"},
			"open_positions": 850,
			"selection_prob": "72%",
			"confidence":     "High",
		},
		"evidence": map[string]any{
			"detected_skills":    []any{"Python", "SQL", "Data Visualization", "Communication"},
			"missing_skills":     []any{"Cloud Platforms (AWS)", "Advanced Machine Learning", "Docker"},
			"resume_weaknesses":  []any{"Quantifiable impact in project descriptions could be improved."},
			"project_weaknesses": []any{"Lack of deployed live projects link."},
		},
		"gap_analysis": map[string]any{
			"missing_skills_tags": []any{"AWS", "Docker", "CI/CD"},
			"weak_areas": []any{
				map[string]any{"area": "Deployment", "score": 40},
				map[string]any{"area": "System Design", "score": 50},
			},
			"top_reasons": []any{"Modern roles require cloud knowledge.", "Full-stack awareness is preferred."},
		},
		"improvement_plan": map[string]any{
			"day_7":  []any{map[string]any{"task": "Learn AWS EC2 & S3 basics", "type": "Urgent"}},
			"day_30": []any{map[string]any{"task": "Deploy one ML model using Flask/Docker", "type": "Project"}},
			"day_90": []any{map[string]any{"task": "Obtain AWS Cloud Practitioner Certification", "type": "Skill"}},
		},
		"future_snapshot": map[string]any{
			"expected_score":    92,
			"updated_salary":    "$90k - $120k",
			"updated_roles":     []any{"Data Scientist", "Cloud Engineer"},
			"updated_companies": []any{"Google", "Amazon", "Microsoft"},
			"updated_prob":      "95%",
		},
		"timeline": []any{
			map[string]any{"date": "Today", "action": "Generated Comprehensive Career Report"},
		},
		"final_summary": "You are on a strong path with a solid foundation in Data analysis. Closing the gap in Cloud and Deployment skills will significantly boost your profile for top-tier product companies.",
	}
}

var interviewStatuses = []string{"Hired", "Shortlisted", "Rejected"}

var radarSubjects = []string{"Technical", "Communication", "Problem Solving", "Confidence", "Culture Fit"}

// interviewReportFallback builds a randomized report in the same shape the model is asked for
func interviewReportFallback(bank *QuestionBank) InterviewReport {
	report := InterviewReport{
		Status:     interviewStatuses[bank.IntN(len(interviewStatuses))],
		Score:      40 + bank.IntN(56), // 40..95
		Feedback:   []string{"Good effort", "Need more clarity"},
		Companies:  []string{"Tech Corp", "Dev Solutions"},
		FocusAreas: []string{"System Design", "HR basics"},
		GraphData:  make([]RadarPoint, 0, len(radarSubjects)),
	}
	for _, subject := range radarSubjects {
		report.GraphData = append(report.GraphData, RadarPoint{
			Subject:  subject,
			Score:    50 + bank.IntN(101), // 50..150
			FullMark: 150,
		})
	}
	return report
}

func hrEmailFallback(req HREmailRequest) map[string]any {
	firstName := req.UserName
	if fields := strings.Fields(req.UserName); len(fields) > 0 {
		firstName = fields[0]
	}
	body := fmt.Sprintf("Hello %s,\n\nI'm %s, a fresher with skills in %s and strong projects. I'm applying for the %s role at %s.\n\nMy resume is attached.\nThank you for your time.\n\nRegards,\n%s",
		req.HRName, req.UserName, strings.Join(req.Skills, ", "), req.TargetRole, req.Company, firstName)
	return map[string]any{"email_content": body}
}

// roadmapFor picks the 4 week, 8 week or phased plan from the requested time frame
func roadmapFor(role, timeFrame string) []RoadmapWeek {
	switch {
	case strings.Contains(timeFrame, "1"):
		return []RoadmapWeek{
			{Week: "Week 1", Focus: "Foundations & Resume", Tasks: []string{"Polish Resume with AI", "Master Aptitude Basics (Speed Math)", "Apply to 5 safe companies"}},
			{Week: "Week 2", Focus: "Technical Core", Tasks: []string{"Review CS Fundamentals (OS, DBMS)", fmt.Sprintf("Deep dive into %s concepts", role), "Solve 20 Easy LeetCode problems"}},
			{Week: "Week 3", Focus: "Advanced Coding", Tasks: []string{"Practice System Design basics", "Solve 10 Medium LeetCode problems", "Complete one full project"}},
			{Week: "Week 4", Focus: "Mock Interviews", Tasks: []string{"Take 3 AI Mock Interviews", "Refine soft skills", "Final revision of cheatsheets"}},
		}
	case strings.Contains(timeFrame, "2"):
		return []RoadmapWeek{
			{Week: "Week 1-2", Focus: "Strong Foundations", Tasks: []string{"Complete Aptitude syllabus", "Build strong Resume & Portfolio", "Network on LinkedIn"}},
			{Week: "Week 3-4", Focus: "Technical Depth", Tasks: []string{fmt.Sprintf("Master %s specific frameworks", role), "Build 1 major project", "Review Core CS subjects"}},
			{Week: "Week 5-6", Focus: "DSA & Problem Solving", Tasks: []string{"Data Structures (Trees, Graphs, DP)", "Solve 50+ Coding problems", "Participate in 2 contests"}},
			{Week: "Week 7-8", Focus: "Interviews & Polish", Tasks: []string{"Daily Mock Interviews", "Behavioral Interview Prep (STAR method)", "Apply aggressively"}},
		}
	default:
		return []RoadmapWeek{
			{Week: "Phase 1", Focus: "Basics", Tasks: []string{"Resume", "Aptitude"}},
			{Week: "Phase 2", Focus: "Tech", Tasks: []string{"Core Skills", "Projects"}},
			{Week: "Phase 3", Focus: "Interviews", Tasks: []string{"Mocks", "Applications"}},
		}
	}
}

package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

func aptitudePrompt(role string) string {
	return fmt.Sprintf(`Generate 1 short but highly challenging logic or mathematical aptitude question for a %s role.
Keep it strictly plain text (NO LaTeX, NO dollar signs, NO complex symbols).
Focus on brain teasers, probability, or sequence logic.
Output JSON format: {"q": "Concise question text", "options": ["A", "B", "C", "D"], "correct": "The correct option text"}`, role)
}

func technicalPrompt(role string) string {
	return fmt.Sprintf(`Generate 1 core technical interview question for a %s role.
Keep it strictly plain text (NO LaTeX).
Include 4 options and the correct answer.
Output JSON format: {"q": "The question text", "options": ["A", "B", "C", "D"], "correct": "The correct option value"}`, role)
}

func codingPrompt(role string) string {
	return fmt.Sprintf(`Generate 1 concise coding/algorithmic problem statement for a %s interview.
Focus on logic or DSA.
Strictly plain text (NO LaTeX).
Output JSON format: {"problem": "The problem text"}`, role)
}

func interviewPrompt(role string) string {
	return fmt.Sprintf(`Generate 1 high-quality behavioral or situational interview question for a %s role. Strictly plain text. Output JSON: {"question": "The question text"}`, role)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func formatHistory(history []InterviewRound) string {
	lines := make([]string, 0, len(history))
	for _, h := range history {
		correct := "N/A"
		if h.IsCorrect != nil {
			correct = fmt.Sprintf("%t", *h.IsCorrect)
		}
		lines = append(lines, fmt.Sprintf("- Round: %s, Correct: %s, Question: %s, Answer: %s, Problem: %s, Solution: %s",
			orNA(h.Round), correct, orNA(h.Question), orNA(h.Answer), orNA(h.Problem), orNA(h.Solution)))
	}
	return strings.Join(lines, "\n")
}

func interviewAnalysisPrompt(role string, history []InterviewRound) string {
	return fmt.Sprintf(`Act as an AI Interviewer. The candidate just finished a multi-stage assessment for the role of '%s'.

Assessment History:
%s

Generate a holistic performance report based on their performance across all rounds.
Be specific in the 'feedback' section about which rounds they excelled in and where they struggled (e.g., "Excelled in Aptitude but struggled with Coding logic").

Output JSON format:
{
    "status": "Hired" or "Shortlisted" or "Rejected",
    "score": number (0-100),
    "feedback": ["Detailed feedback points considering multi-stage performance"],
    "companies": ["Top companies that would hire this profile"],
    "focus_areas": ["Areas to improve if not hired"],
    "stage_summary": [
        {"round": "Aptitude", "status": "Passed/Failed/Attempted", "details": "Short comment"},
        {"round": "Technical", "status": "...", "details": "..."},
        {"round": "Coding", "status": "...", "details": "..."}
    ],
    "graph_data": [
        {"subject": "Technical", "A": number (50-150), "fullMark": 150},
        {"subject": "Communication", "A": number (50-150), "fullMark": 150},
        {"subject": "Problem Solving", "A": number (50-150), "fullMark": 150},
        {"subject": "Confidence", "A": number (50-150), "fullMark": 150},
        {"subject": "Culture Fit", "A": number (50-150), "fullMark": 150}
    ]
}`, role, formatHistory(history))
}

func chatPrompt(query string) string {
	return fmt.Sprintf(`Act as a friendly Career Assistant. User asks: "%s"

Provide a helpful response. If the user asks for jobs, suggest 2-3 relevant roles.

Output JSON format:
{
    "response": "The text response (keep it concise and encouraging)",
    "roles": [
        { "job_title": "Title", "description": "Short desc", "apply_link": "https://linkedin.com/jobs/search/?keywords=Title" }
    ],
    "suggestions": ["Next question 1", "Next question 2"]
}`, query)
}

func companyPrepPrompt(companyType, companyName, period string) string {
	return fmt.Sprintf(`Act as an experienced Placement Mentor.
User is preparing for '%[2]s' (%[1]s based).

1. **Hiring Trends (Last 3 Years)**: Analyze how '%[2]s' has hired recently (e.g., focus areas, difficulty level, rounds).
2. **Frequent Topics**: Identify concepts and questions they ask repeatedly.
3. **Plan**: Create a %[3]s tailored study plan.

Structure the response as a JSON object with this exact schema:
{
    "insights": {
        "hiring_trend": "Summary of %[2]s's hiring pattern over the last 3 years.",
        "common_rounds": ["Round 1: Online Test", "Round 2: Technical"],
        "frequent_topics": ["Topic 1", "Topic 2"],
        "difficulty_level": "Medium-Hard"
    },
    "weeks": [
        {
            "week_number": 1,
            "theme": "Focus Area",
            "days": [
                {
                    "day": 1,
                    "topic": "Topic Name",
                    "subtopics": ["Sub 1", "Sub 2"],
                    "priority": "High",
                    "resources": ["Link/Book"],
                    "practice_question": "Specific question asked in %[2]s (if any)"
                }
            ]
        }
    ]
}

Ensure the plan is realistic and highly specific to %[2]s if possible.`, companyType, companyName, period)
}

func reportCardPrompt(reportData any) string {
	data, err := json.MarshalIndent(reportData, "", "  ")
	if err != nil {
		data = []byte("{}")
	}
	return fmt.Sprintf(`Act as a Senior Career Data Scientist. Analyze this student's activity report from the 'Smart Career Advisor' app.

User Activity Data:
%s

The user has engaged with various features (Job Search, Resume Building, Interview Prep, etc.).

Generate a comprehensive JSON report for the "AI Career Report Dashboard".
The report MUST follow this EXACT structure:

{
    "readiness_score": 0-100 (integer),
    "status_label": "Not Ready / Partially Ready / Industry Ready / Placement Ready",
    "score_breakdown": {
        "Resume Quality": 0-100,
        "Skill Set": 0-100,
        "Project Portfolio": 0-100,
        "Job Market Match": 0-100,
        "Interview Prep": 0-100,
        "Consistency": 0-100
    },
    "module_usage": [
        { "name": "Job Search", "status": "Completed/Pending", "completion": 0-100, "last_run": "timestamp or 'Never'", "outcome": "e.g., 'Analyzed 15 listings'", "score_contribution": "+10" }
    ],
    "current_snapshot": {
        "predicted_role": "e.g., Data Analyst",
        "domain_fit": "e.g., High",
        "salary_range": "e.g., $60k - $80k",
        "top_companies": ["Comp1", "Comp2"],
        "open_positions": 1200,
        "selection_prob": "e.g., 65%%",
        "confidence": "High/Medium/Low"
    },
    "evidence": {
        "detected_skills": ["Skill1", "Skill2"],
        "missing_skills": ["Skill3", "Skill4"],
        "resume_weaknesses": ["Weakness1"],
        "project_weaknesses": ["Weakness1"]
    },
    "gap_analysis": {
        "missing_skills_tags": ["Python", "SQL"],
        "weak_areas": [
            { "area": "Coding", "score": 40 },
            { "area": "System Design", "score": 30 }
        ],
        "top_reasons": ["Reason 1", "Reason 2", "Reason 3"]
    },
    "improvement_plan": {
        "day_7": [ { "task": "Task 1", "type": "Urgent" } ],
        "day_30": [ { "task": "Task 1", "type": "Skill" } ],
        "day_90": [ { "task": "Task 1", "type": "Project" } ]
    },
    "future_snapshot": {
        "expected_score": 90,
        "updated_salary": "$80k - $100k",
        "updated_roles": ["Senior Analyst"],
        "updated_companies": ["Google", "Amazon"],
        "updated_prob": "90%%"
    },
    "timeline": [
        { "date": "Today", "action": "Generated Report" }
    ],
    "final_summary": "3 concise lines summarizing the verdict."
}

Include every module present in the activity data under module_usage and infer the timeline from its timestamps when they exist.
If data is missing for a section (e.g. no resume uploaded), generate REALISTIC ESTIMATES or "N/A" values based on the limited info, but KEEP THE STRUCTURE.
BE STRICT with JSON format.`, data)
}

func hrEmailPrompt(req HREmailRequest) string {
	return fmt.Sprintf(`Generate a professional and concise job application email.
HR Name: %s
Company: %s
User Name: %s
User Skills: %s
Target Role: %s

The email should be warm, professional, and mention the resume is attached.

Output JSON format:
{
    "email_content": "The full email body text"
}`, req.HRName, req.Company, req.UserName, strings.Join(req.Skills, ", "), req.TargetRole)
}

func summaryPrompt(role string, skills []string) string {
	return fmt.Sprintf(`Write a 3 sentence professional resume summary for a candidate targeting a %s role.
Key skills: %s.
Use first person implied (no "I"), keep it plain text with no headings or bullet points.`, role, strings.Join(skills, ", "))
}

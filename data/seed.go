package data

import (
	"strings"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/google/uuid"
)

type Dataset struct {
	Users               []models.User
	StudentProfiles     []models.StudentProfile
	InterviewerProfiles []models.InterviewerProfile
	Companies           []models.Company
	Slots               []models.AvailabilitySlot
	Interviews          []models.Interview
	Feedback            []models.FeedbackReport
	TrainingModules     []models.TrainingModule
	TrainingProgress    []models.TrainingProgress
	PracticeQuestions   []models.PracticeQuestion
	Assessments         []models.Assessment
}

// Build returns the demo dataset with every schedule placed relative to now.
// passwordHash is stored on all demo accounts.
func Build(now time.Time, passwordHash string) Dataset {
	b := &builder{now: now.UTC(), hash: passwordHash}
	b.companies()
	b.students()
	b.interviewers()
	b.interviews()
	b.feedback()
	b.training()
	b.practice()
	b.assessment()
	return b.ds
}

type builder struct {
	now  time.Time
	hash string
	ds   Dataset
}

func (b *builder) at(days, hour, minute int) time.Time {
	midnight := time.Date(b.now.Year(), b.now.Month(), b.now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func (b *builder) user(key, name, role, plan string) models.User {
	u := models.User{
		ID:        ID("user", key),
		FullName:  name,
		Email:     key + "@mockprep.dev",
		Password:  b.hash,
		Role:      role,
		Plan:      plan,
		IsActive:  true,
		CreatedAt: b.now.AddDate(0, -3, 0),
		UpdatedAt: b.now.AddDate(0, -3, 0),
	}
	b.ds.Users = append(b.ds.Users, u)
	return u
}

func (b *builder) companies() {
	add := func(name, desc string, roles []string, interviewers int, rating float32) {
		b.ds.Companies = append(b.ds.Companies, models.Company{
			ID:               ID("company", strings.ToLower(name)),
			Name:             name,
			LogoURL:          "/placeholder.svg?height=60&width=60",
			Description:      desc,
			Roles:            roles,
			InterviewerCount: interviewers,
			Rating:           rating,
		})
	}
	add("Google", "Leading technology company specializing in internet-related services and products.",
		[]string{"Software Engineer", "Product Manager", "UX Designer", "Data Scientist"}, 12, 4.8)
	add("Amazon", "Multinational technology company focusing on e-commerce, cloud computing, and digital streaming.",
		[]string{"Software Development Engineer", "Technical Program Manager", "Solutions Architect", "Product Manager"}, 15, 4.7)
	add("Microsoft", "Technology corporation that develops, manufactures, licenses, and sells computer software and consumer electronics.",
		[]string{"Software Engineer", "Program Manager", "Data Engineer", "Cloud Solutions Architect"}, 10, 4.6)
	add("Facebook", "Social media and technology company that builds products to connect people.",
		[]string{"Software Engineer", "Product Designer", "Data Scientist", "Research Scientist"}, 8, 4.5)
	add("Apple", "Technology company that designs, develops, and sells consumer electronics, computer software, and online services.",
		[]string{"Software Engineer", "Hardware Engineer", "Machine Learning Engineer", "Product Manager"}, 7, 4.9)
}

func (b *builder) students() {
	resume := "https://res.cloudinary.com/mockprep/raw/upload/resumes/alex-johnson.pdf"
	alex := b.user("alex.johnson", "Alex Johnson", models.RoleStudent, "basic")
	b.ds.StudentProfiles = append(b.ds.StudentProfiles, models.StudentProfile{
		UserID:      alex.ID,
		Education:   "B.Tech in Computer Science",
		Skills:      []string{"React", "JavaScript", "Go", "SQL"},
		Experience:  "2 years as a frontend developer",
		ResumeURL:   &resume,
		WeakAreas:   []string{"Dynamic Programming", "System Design Scalability", "Concurrency"},
		StrongAreas: []string{"Array Manipulation", "Communication", "Object-Oriented Design"},
		SkillScores: models.SkillSummary{
			Overall:            72,
			Technical:          68,
			Communication:      85,
			ProblemSolving:     75,
			SystemDesign:       60,
			CodingSpeed:        65,
			AlgorithmKnowledge: 70,
			RecentProgress:     []int{65, 67, 68, 70, 72, 72, 75},
		},
		TargetRole:    "Software Engineer",
		TargetCompany: "Google",
	})

	jamie := b.user("jamie.smith", "Jamie Smith", models.RoleStudent, "free")
	b.ds.StudentProfiles = append(b.ds.StudentProfiles, models.StudentProfile{
		UserID:     jamie.ID,
		Education:  "B.Sc in Information Technology",
		Skills:     []string{"Python", "Django"},
		WeakAreas:  []string{"System Design"},
		TargetRole: "Software Engineer",
	})
}

type slotSpec struct {
	weekday time.Weekday
	hour    int
	hours   int
}

type interviewerSpec struct {
	key, name, title, company string
	years                     int
	specialization            []string
	rating                    float32
	reviews                   int
	slots                     []slotSpec
}

var interviewerSpecs = []interviewerSpec{
	{"rahul.sharma", "Rahul Sharma", "Senior Software Engineer", "Google", 7, []string{"Algorithms", "System Design"}, 4.9, 45,
		[]slotSpec{{time.Monday, 14, 2}, {time.Wednesday, 10, 2}, {time.Friday, 15, 2}}},
	{"priya.patel", "Priya Patel", "Technical Program Manager", "Amazon", 6, []string{"Leadership Principles", "System Design"}, 4.8, 38,
		[]slotSpec{{time.Tuesday, 13, 2}, {time.Thursday, 11, 2}, {time.Saturday, 10, 2}}},
	{"vikram.singh", "Vikram Singh", "Principal Engineer", "Microsoft", 10, []string{"Distributed Systems", "Cloud Architecture"}, 4.7, 52,
		[]slotSpec{{time.Monday, 17, 2}, {time.Wednesday, 14, 2}, {time.Friday, 10, 2}}},
	{"ananya.desai", "Ananya Desai", "Engineering Manager", "Google", 8, []string{"Leadership", "Coding Interviews"}, 4.9, 41,
		[]slotSpec{{time.Tuesday, 9, 2}, {time.Thursday, 15, 2}, {time.Saturday, 13, 2}}},
	{"arjun.mehta", "Arjun Mehta", "Senior Product Manager", "Amazon", 5, []string{"Product Case Studies", "Behavioral Interviews"}, 4.6, 29,
		[]slotSpec{{time.Monday, 13, 2}, {time.Wednesday, 16, 2}, {time.Friday, 9, 2}}},
	{"david.wilson", "David Wilson", "Senior Software Engineer", "Amazon", 5, []string{"System Design", "Algorithms"}, 4.5, 20,
		[]slotSpec{{time.Monday, 14, 2}, {time.Wednesday, 10, 2}, {time.Friday, 15, 2}}},
	{"emily.rodriguez", "Emily Rodriguez", "Frontend Engineer", "Facebook", 4, []string{"React", "JavaScript", "CSS"}, 4.6, 18,
		[]slotSpec{{time.Tuesday, 13, 2}, {time.Thursday, 11, 2}, {time.Saturday, 10, 2}}},
	{"james.lee", "James Lee", "Backend Engineer", "Netflix", 6, []string{"Node.js", "Databases", "API Design"}, 4.7, 22,
		[]slotSpec{{time.Monday, 17, 2}, {time.Wednesday, 14, 2}, {time.Friday, 10, 2}}},
	{"sarah.johnson", "Sarah Johnson", "Staff Frontend Engineer", "Google", 9, []string{"Frontend Architecture", "Performance"}, 4.8, 33,
		[]slotSpec{{time.Tuesday, 10, 1}, {time.Thursday, 16, 1}}},
	{"michael.chen", "Michael Chen", "Senior Software Engineer", "Microsoft", 7, []string{"Backend Systems", "Coding Interviews"}, 4.7, 27,
		[]slotSpec{{time.Wednesday, 11, 1}, {time.Friday, 13, 1}}},
}

func (b *builder) interviewers() {
	for _, spec := range interviewerSpecs {
		u := b.user(spec.key, spec.name, models.RoleInterviewer, "")
		b.ds.InterviewerProfiles = append(b.ds.InterviewerProfiles, models.InterviewerProfile{
			UserID:          u.ID,
			Company:         spec.company,
			Title:           spec.title,
			ExperienceYears: spec.years,
			Specialization:  spec.specialization,
			AvgRating:       spec.rating,
			ReviewCount:     spec.reviews,
			AvatarURL:       "/placeholder.svg?height=80&width=80",
			User:            u,
		})
		for i, s := range spec.slots {
			start := b.nextWeekday(s.weekday, s.hour)
			b.ds.Slots = append(b.ds.Slots, models.AvailabilitySlot{
				ID:            ID("slot", spec.key+"/"+string(rune('a'+i))),
				InterviewerID: u.ID,
				StartTime:     start,
				EndTime:       start.Add(time.Duration(s.hours) * time.Hour),
			})
		}
	}
}

// nextWeekday is the first occurrence of day at hour that is at least a full
// day away from now.
func (b *builder) nextWeekday(day time.Weekday, hour int) time.Time {
	offset := (int(day) - int(b.now.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return b.at(offset, hour, 0)
}

var sampleQuestions = []string{
	"Tell me about your experience with React.",
	"How would you optimize a slow-loading website?",
	"Explain the concept of closures in JavaScript.",
	"How do you handle state management in large applications?",
}

type interviewSpec struct {
	key         string
	student     uuid.UUID
	interviewer string
	company     string
	role        string
	start       time.Time
	duration    time.Duration
	status      string
}

func (b *builder) interviews() {
	specs := []interviewSpec{
		{"upcoming-1", AlexID, "sarah.johnson", "google", "Frontend Developer", b.at(3, 10, 0), 45 * time.Minute, models.InterviewConfirmed},
		{"upcoming-2", AlexID, "michael.chen", "microsoft", "Software Engineer", b.at(8, 14, 0), time.Hour, models.InterviewPending},
		{"scheduled-1", AlexID, "rahul.sharma", "google", "Frontend Developer", b.at(5, 10, 0), time.Hour, models.InterviewConfirmed},
		{"scheduled-2", JamieID, "rahul.sharma", "google", "Software Engineer", b.at(10, 14, 0), time.Hour, models.InterviewPending},
		{"101", AlexID, "david.wilson", "amazon", "Frontend Developer", b.at(-20, 11, 0), time.Hour, models.InterviewCompleted},
		{"102", AlexID, "james.lee", "", "UI Engineer", b.at(-25, 15, 0), time.Hour, models.InterviewCompleted},
	}

	for _, s := range specs {
		slot := models.AvailabilitySlot{
			ID:            ID("slot", "interview/"+s.key),
			InterviewerID: ID("user", s.interviewer),
			StartTime:     s.start,
			EndTime:       s.start.Add(s.duration),
			IsBooked:      true,
		}
		b.ds.Slots = append(b.ds.Slots, slot)

		var companyID *uuid.UUID
		if s.company != "" {
			id := ID("company", s.company)
			companyID = &id
		}
		link := "https://meet.mockprep.dev/" + strings.ReplaceAll(s.key, "-", "")
		b.ds.Interviews = append(b.ds.Interviews, models.Interview{
			ID:                 ID("interview", s.key),
			StudentID:          s.student,
			InterviewerID:      slot.InterviewerID,
			AvailabilitySlotID: slot.ID,
			CompanyID:          companyID,
			Role:               s.role,
			StartTime:          slot.StartTime,
			EndTime:            slot.EndTime,
			Status:             s.status,
			MeetingLink:        &link,
			Questions:          sampleQuestions,
			CreatedAt:          b.now.AddDate(0, 0, -40),
			UpdatedAt:          b.now.AddDate(0, 0, -40),
		})
	}
}

func (b *builder) feedback() {
	strengths := []string{
		"Strong understanding of React fundamentals and hooks",
		"Clear communication of technical concepts",
		"Good approach to problem decomposition",
		"Excellent knowledge of frontend optimization techniques",
	}
	improvements := []string{
		"Could improve depth of knowledge in state management libraries",
		"Consider providing more concrete examples when explaining concepts",
		"Work on time management during problem-solving exercises",
	}
	comments := "Alex showed great potential and would likely be a good fit for a mid-level frontend role. " +
		"With some additional practice on system design and state management, they could quickly progress to a senior position."
	resources := []models.LearningResource{
		{Title: "Advanced React Patterns", Type: "Course", Link: "https://example.com/course"},
		{Title: "System Design for Frontend Engineers", Type: "Book", Link: "https://example.com/book"},
		{Title: "State Management Deep Dive", Type: "Article", Link: "https://example.com/article"},
	}
	practice := []string{
		"Explain the virtual DOM and its benefits in React",
		"Design a scalable state management solution for a large e-commerce application",
		"How would you optimize the performance of a React application?",
		"Explain the concept of code splitting and when you would use it",
	}
	sentiment := models.SentimentMetrics{Confidence: 75, Clarity: 82, TechnicalAccuracy: 88, InterviewPace: 70}

	add := func(id uuid.UUID, interviewKey, interviewer string, scores models.FeedbackScores) {
		b.ds.Feedback = append(b.ds.Feedback, models.FeedbackReport{
			ID:                   id,
			InterviewID:          ID("interview", interviewKey),
			StudentID:            AlexID,
			InterviewerID:        ID("user", interviewer),
			Scores:               scores,
			Strengths:            strengths,
			AreasForImprovement:  improvements,
			AdditionalComments:   comments,
			Sentiment:            sentiment,
			RecommendedResources: resources,
			PracticeQuestions:    practice,
			CreatedAt:            b.now.AddDate(0, 0, -19),
			UpdatedAt:            b.now.AddDate(0, 0, -19),
		})
	}
	add(FeedbackAID, "101", "david.wilson", models.FeedbackScores{
		TechnicalSkills: 4, CommunicationSkills: 3, ProblemSolving: 4, CultureFit: 5, Overall: 4,
	})
	add(FeedbackBID, "102", "james.lee", models.FeedbackScores{
		TechnicalSkills: 5, CommunicationSkills: 4, ProblemSolving: 4.5, CultureFit: 4, Overall: 4.4,
	})
}

func (b *builder) training() {
	add := func(key, title, desc string, total, completed int) {
		m := models.TrainingModule{
			ID:           ID("module", key),
			Title:        title,
			Description:  desc,
			TotalLessons: total,
			ImageURL:     "/placeholder.svg?height=100&width=200",
		}
		b.ds.TrainingModules = append(b.ds.TrainingModules, m)
		b.ds.TrainingProgress = append(b.ds.TrainingProgress, models.TrainingProgress{
			StudentID:        AlexID,
			ModuleID:         m.ID,
			CompletedLessons: completed,
			UpdatedAt:        b.now.AddDate(0, 0, -2),
		})
	}
	add("fundamentals", "Technical Interview Fundamentals",
		"Master the basics of technical interviews with focus on algorithms and data structures", 12, 8)
	add("system-design", "System Design Interview Prep",
		"Learn how to approach and solve system design questions for senior roles", 10, 3)
	add("behavioral", "Behavioral Interview Mastery",
		"Prepare compelling stories and answers for common behavioral questions", 8, 7)
	add("amazon-lp", "Amazon Leadership Principles",
		"Specialized training for Amazon interviews focusing on their leadership principles", 14, 1)
}

func (b *builder) practice() {
	day := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}
	add := func(n int, q, desc, difficulty, category string, tags []string, company string, attempts int, last *time.Time, score int, solved bool) {
		b.ds.PracticeQuestions = append(b.ds.PracticeQuestions, models.PracticeQuestion{
			ID:            ID("practice", string(rune('0'+n))),
			Question:      q,
			Description:   desc,
			Difficulty:    difficulty,
			Category:      category,
			Tags:          tags,
			Company:       company,
			Attempts:      attempts,
			LastAttempted: last,
			Score:         score,
			Solved:        solved,
		})
	}
	add(1, "Implement a function to check if a binary tree is balanced",
		"A balanced tree is defined as a tree such that the heights of the two subtrees of any node never differ by more than one.",
		"Medium", "Trees", []string{"Binary Tree", "Recursion", "DFS"}, "Amazon", 2, day("2025-03-01"), 85, true)
	add(2, "Design a URL shortening service like bit.ly",
		"Explain the system architecture, database schema, and how you would handle redirects efficiently.",
		"Hard", "System Design", []string{"Database", "Scalability", "Hashing"}, "Google", 1, day("2025-02-28"), 60, false)
	add(3, "Find the kth largest element in an unsorted array",
		"Implement a function that finds the kth largest element in an unsorted array without sorting the entire array.",
		"Medium", "Arrays", []string{"Sorting", "Heap", "QuickSelect"}, "Facebook", 3, day("2025-03-05"), 90, true)
	add(4, "Implement LRU Cache",
		"Design and implement a data structure for Least Recently Used (LRU) cache.",
		"Medium", "Data Structures", []string{"Hash Table", "Linked List", "Design"}, "Microsoft", 0, nil, 0, false)
	add(5, "Merge k Sorted Lists",
		"Merge k sorted linked lists and return it as one sorted list.",
		"Hard", "Linked Lists", []string{"Heap", "Divide and Conquer", "Linked List"}, "Amazon", 1, day("2025-03-02"), 75, true)
	add(6, "Design a distributed key-value store",
		"Design a scalable, highly available key-value store that can handle millions of operations per second.",
		"Hard", "System Design", []string{"Distributed Systems", "Consistency", "Scalability"}, "Google", 2, day("2025-02-25"), 65, false)
}

func (b *builder) assessment() {
	b.ds.Assessments = append(b.ds.Assessments, models.Assessment{
		ID:               AssessmentID,
		Title:            "Technical Interview Readiness Assessment",
		Description:      "This assessment will evaluate your technical interview skills across multiple dimensions",
		TimeLimitMinutes: 45,
		Sections: []models.AssessmentSection{
			{ID: "s1", Title: "Technical Knowledge", Description: "Test your understanding of core computer science concepts"},
			{ID: "s2", Title: "Problem Solving", Description: "Evaluate your approach to solving algorithmic problems"},
			{ID: "s3", Title: "System Design", Description: "Assess your ability to design scalable systems"},
		},
		Questions: []models.AssessmentQuestion{
			{
				ID: "q1", SectionID: "s1", Type: models.QuestionMultipleChoice,
				Prompt:        "What is the time complexity of binary search?",
				Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
				CorrectAnswer: "O(log n)",
			},
			{
				ID: "q2", SectionID: "s1", Type: models.QuestionMultipleChoice,
				Prompt:        "Which data structure would be most efficient for implementing a priority queue?",
				Options:       []string{"Array", "Linked List", "Heap", "Hash Table"},
				CorrectAnswer: "Heap",
			},
			{
				ID: "q3", SectionID: "s2", Type: models.QuestionCoding,
				Prompt:      "Write a function to check if a string is a palindrome.",
				StarterCode: "function isPalindrome(str) {\n  // Your code here\n}",
			},
			{
				ID: "q4", SectionID: "s3", Type: models.QuestionOpenEnded,
				Prompt: "How would you design a URL shortening service like bit.ly?",
			},
		},
		CreatedAt: b.now.AddDate(0, -3, 0),
	})
}

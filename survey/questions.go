// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// The instrument. Option and sub-item texts are load-bearing: stored answers
// reference them verbatim, and tallies key on them. Editing a string here is
// schema drift for every response already recorded with the old text.

var sections = []Section{
	{Num: 1, Title: "Respondent Background", Note: "Background information used to compare responses across institution types, disciplines, and experience levels."},
	{Num: 2, Title: "Overall Academic Preparedness", Note: "Rate your observations based on students beginning your introductory biology course — regardless of whether they took AP Biology."},
	{Num: 3, Title: "Foundational Biology Knowledge", Note: "Rate how well students demonstrate each competency upon arrival. Scale: 1 = Very Poor · 2 = Below Average · 3 = Average · 4 = Above Average · 5 = Excellent"},
	{Num: 4, Title: "Critical Thinking & Scientific Reasoning", Note: "Rate student competencies on the same 1–5 scale."},
	{Num: 5, Title: "Laboratory Skills & Scientific Practice", Note: ""},
	{Num: 6, Title: "Academic & Study Skills", Note: ""},
	{Num: 7, Title: "Recommendations — What AP Teachers Can Do", Note: "Your perspectives on what high school AP Biology teachers could do to better prepare students for college. Focus on what is within a teacher's direct control."},
	{Num: 8, Title: "College Classroom Policies", Note: "Your own classroom practices and policies — helps high school teachers understand how college biology is typically structured."},
	{Num: 9, Title: "Final Reflections", Note: ""},
}

var fivePointCompetency = []string{"1 – Very Poor", "2 – Below Avg", "3 – Average", "4 – Above Avg", "5 – Excellent"}

var questions = []Question{
	// Section 1
	{ID: "q1", Section: 1, Type: TypeSingleChoice, Text: "What type of institution do you teach at?",
		Options: []string{"R1/R2 Doctoral University (high or very high research activity)", "Master's University", "Liberal Arts College / Baccalaureate College", "Community College or Two-Year Institution", "Other"}},
	{ID: "q2", Section: 1, Type: TypeSingleChoice, Text: "How many years have you taught introductory biology courses at the college level?",
		Options: []string{"Fewer than 3 years", "3–7 years", "8–15 years", "More than 15 years"}},
	{ID: "q3", Section: 1, Type: TypeSingleChoice, Text: "What is your primary teaching area within biology?",
		Options: []string{"Cell and Molecular Biology", "Genetics / Genomics", "Ecology / Environmental Biology", "Physiology / Anatomy", "Evolution / Organismal Biology", "Biochemistry", "General / Introductory Biology (broad)", "Other"}},
	{ID: "q4", Section: 1, Type: TypeSingleChoice, Text: "Approximately what percentage of students in your introductory biology course arrive having taken AP Biology in high school?",
		Options: []string{"Less than 10%", "10–25%", "26–50%", "51–75%", "More than 75%", "I do not know / do not have this information"}},
	{ID: "q5", Section: 1, Type: TypeScale, AI: true, Text: "How comfortable are you personally with using technology and AI tools in an academic or instructional setting?",
		Options: []string{"Very Uncomfortable", "Somewhat Uncomfortable", "Neutral", "Somewhat Comfortable", "Very Comfortable"}},

	// Section 2
	{ID: "q6", Section: 2, Type: TypeScale, Text: "How would you rate the overall academic preparedness of incoming students for college-level biology?",
		Options: []string{"Very Underprepared", "Somewhat Underprepared", "Adequately Prepared", "Well Prepared", "Exceptionally Prepared"}},
	{ID: "q7", Section: 2, Type: TypeSingleChoice, Text: "How would you describe the trend in incoming student preparedness over the past five years?",
		Options: []string{"Students have become noticeably more prepared", "Students have become somewhat more prepared", "Preparedness has remained about the same", "Students have become somewhat less prepared", "Students have become noticeably less prepared", "I have not been teaching long enough to observe a trend"}},
	{ID: "q8", Section: 2, Type: TypeFreeText, Text: "Please describe any specific changes in student preparedness you have observed over time:"},
	{ID: "q9", Section: 2, Type: TypeSingleChoice, AI: true, Text: "Have you noticed changes — positive or negative — in student preparedness that you believe may be related to increased use of AI tools (such as ChatGPT, Claude, Gemini, or similar) in high school?",
		Options: []string{"Yes, I have noticed changes I believe are positively related to AI tool use", "Yes, I have noticed changes I believe are negatively related to AI tool use", "I have noticed changes but cannot attribute them to AI tool use specifically", "I have not noticed any changes I would attribute to AI tool use", "I do not have enough information to assess this"}},
	{ID: "q10", Section: 2, Type: TypeFreeText, AI: true, Text: "Please describe any observations you have made about how AI tool use may be affecting student preparedness:"},

	// Section 3
	{ID: "q11", Section: 3, Type: TypeScale, Text: "Core cell biology concepts (cell structure, membranes, organelles, cell cycle):", Options: fivePointCompetency},
	{ID: "q12", Section: 3, Type: TypeScale, Text: "Genetics and heredity (Mendelian genetics, gene expression, mutations):", Options: fivePointCompetency},
	{ID: "q13", Section: 3, Type: TypeScale, Text: "Biochemistry fundamentals (macromolecules, enzyme function, metabolism pathways):", Options: fivePointCompetency},
	{ID: "q14", Section: 3, Type: TypeScale, Text: "Understanding of evolution and natural selection:", Options: fivePointCompetency},
	{ID: "q15", Section: 3, Type: TypeScale, Text: "Understanding of ecology and biological systems:", Options: fivePointCompetency},
	{ID: "q16", Section: 3, Type: TypeScale, Text: "Breadth and retention of biological vocabulary (ability to recall and apply key terms):", Options: fivePointCompetency},
	{ID: "q17", Section: 3, Type: TypeFreeText, Text: "Are there specific content areas where you consistently observe significant knowledge gaps? If so, please describe them:"},
	{ID: "q18", Section: 3, Type: TypeSingleChoice, AI: true, Text: "Do you believe students are using AI tools to look up biology content instead of deeply learning it? If so, how does this affect their foundational knowledge?",
		Options: []string{"Yes, and I believe it is reducing the depth of their content knowledge", "Yes, but I believe it has little effect on the depth of their knowledge", "Possibly, but I have no strong evidence either way", "No, I do not believe this is a significant pattern", "I have not observed this"}},
	{ID: "q19", Section: 3, Type: TypeFreeText, AI: true, Text: "Please describe any specific observations about AI use and student content knowledge:"},

	// Section 4
	{ID: "q20", Section: 4, Type: TypeScale, Text: "Ability to design a simple experiment (identify variables, controls, hypotheses):", Options: fivePointCompetency},
	{ID: "q21", Section: 4, Type: TypeScale, Text: "Ability to interpret graphical and tabular data (graphs, charts, tables):", Options: fivePointCompetency},
	{ID: "q22", Section: 4, Type: TypeScale, Text: "Ability to evaluate evidence and draw scientifically valid conclusions:", Options: fivePointCompetency},
	{ID: "q23", Section: 4, Type: TypeScale, Text: "Ability to apply biological concepts to novel or unfamiliar scenarios:", Options: fivePointCompetency},
	{ID: "q24", Section: 4, Type: TypeScale, Text: "Ability to synthesize information from multiple sources or readings:", Options: fivePointCompetency},
	{ID: "q25", Section: 4, Type: TypeSingleChoice, Text: "In your experience, how do students who took AP Biology compare to non-AP students in terms of scientific reasoning and critical thinking?",
		Options: []string{"AP Biology students demonstrate noticeably stronger critical thinking skills", "AP Biology students demonstrate somewhat stronger critical thinking skills", "There is no consistent difference between the two groups", "AP Biology students demonstrate somewhat weaker critical thinking in some areas", "AP Biology students demonstrate noticeably weaker critical thinking in some areas", "I have not observed a pattern I am confident about"}},
	{ID: "q26", Section: 4, Type: TypeFreeText, Text: "Please elaborate on any critical thinking patterns you have observed (AP vs. non-AP students):"},
	{ID: "q27", Section: 4, Type: TypeScale, AI: true, Text: "In your observation, how does student reliance on AI tools appear to affect critical thinking and scientific reasoning?",
		Options: []string{"Strongly Negative", "Somewhat Negative", "No Effect", "Somewhat Positive", "Strongly Positive"}},
	{ID: "q28", Section: 4, Type: TypeSingleChoice, AI: true, Text: "Have you observed students submitting work you believe was generated or substantially assisted by AI?",
		Options: []string{"Yes, frequently (more than 25% of submitted work)", "Yes, occasionally (roughly 10–25% of submitted work)", "Yes, but rarely (fewer than 10% of submitted work)", "No, I have not observed this", "I do not assess work in a way that would allow me to detect this"}},
	{ID: "q29", Section: 4, Type: TypeFreeText, AI: true, Text: "When you encounter work you suspect was AI-assisted, how does it differ from authentic student work in terms of biological reasoning quality?"},

	// Section 5
	{ID: "q30", Section: 5, Type: TypeScale, Text: "Ability to use standard laboratory equipment (pipettes, microscopes, centrifuges, etc.):", Options: fivePointCompetency},
	{ID: "q31", Section: 5, Type: TypeScale, Text: "Ability to follow multi-step laboratory protocols accurately:", Options: fivePointCompetency},
	{ID: "q32", Section: 5, Type: TypeScale, Text: "Ability to record, organize, and present laboratory data in a scientific format:", Options: fivePointCompetency},
	{ID: "q33", Section: 5, Type: TypeScale, Text: "Understanding of laboratory safety protocols:", Options: fivePointCompetency},
	{ID: "q34", Section: 5, Type: TypeSingleChoice, Text: "Are students who completed AP Biology laboratory investigations better prepared for college lab work than those who did not?",
		Options: []string{"Yes, considerably better prepared", "Yes, somewhat better prepared", "Generally about the same", "In some areas better, in other areas not", "Generally not better prepared", "I do not have enough information to assess this"}},
	{ID: "q35", Section: 5, Type: TypeFreeText, Text: "What specific laboratory skills are most underdeveloped in incoming students, regardless of AP Biology background?"},
	{ID: "q36", Section: 5, Type: TypeMultiChoice, AI: true, Text: "Do you use any technology or AI-based tools in your laboratory courses? (Select all that apply)",
		Options: []string{"Virtual laboratory simulations (e.g., Labster, PhET)", "AI-assisted data analysis or visualization tools", "Computer-based microscopy or imaging software", "Bioinformatics tools or genomic databases (e.g., NCBI, BLAST)", "General AI assistants (e.g., ChatGPT, Claude) for pre/post-lab work", "I do not use technology-based or AI tools in laboratory instruction", "Other"}},
	{ID: "q37", Section: 5, Type: TypeSingleChoice, AI: true, Text: "Should AP Biology courses incorporate more technology-based or AI-assisted laboratory simulations to supplement or replace physical lab work?",
		Options: []string{"Yes, technology-based labs can be as effective as physical labs for most skills", "Yes, as a supplement but not a replacement for hands-on physical labs", "No, physical laboratory experience is essential and should not be reduced", "I do not have a strong opinion on this", "Other"}},

	// Section 6
	{ID: "q38", Section: 6, Type: TypeScale, Text: "Ability to read and comprehend primary scientific literature (journal articles, research papers):", Options: fivePointCompetency},
	{ID: "q39", Section: 6, Type: TypeScale, Text: "Ability to write clearly and scientifically (lab reports, essays, short-answer responses):", Options: fivePointCompetency},
	{ID: "q40", Section: 6, Type: TypeScale, Text: "Ability to manage time and study effectively for college-level biology coursework:", Options: fivePointCompetency},
	{ID: "q41", Section: 6, Type: TypeScale, Text: "Persistence and willingness to work through problems without immediately seeking the answer:", Options: fivePointCompetency},
	{ID: "q42", Section: 6, Type: TypeSingleChoice, Text: "How well do students demonstrate comfort with academic struggle and productive failure in your course?",
		Options: []string{"Most students show healthy persistence and resilience when challenged", "Some students persist but many become discouraged quickly", "Most students struggle to persist when faced with difficulty or ambiguity", "Student resilience varies widely and I have observed notable changes recently", "Other"}},
	{ID: "q43", Section: 6, Type: TypeSingleChoice, AI: true, Text: "How has access to AI tools affected students' approach to studying and independent problem-solving?",
		Options: []string{"Students are more likely to use AI to immediately find answers rather than working through problems", "Students use AI as a study aid in productive ways (e.g., concept explanation, practice problems)", "I see both productive and unproductive AI use in roughly equal measure", "AI use does not appear to significantly affect how students study", "I do not have enough information to assess this"}},
	{ID: "q44", Section: 6, Type: TypeSingleChoice, AI: true, Text: "What is your institution's current policy on student use of AI tools in introductory biology coursework?",
		Options: []string{"AI tools are prohibited for all coursework", "AI tools are prohibited for some assignments but permitted for others", "AI tool use is permitted with proper disclosure/citation", "AI tool use is unrestricted", "My institution has no formal policy; it is left to individual instructors", "I am not aware of a formal institution policy"}},
	{ID: "q45", Section: 6, Type: TypeFreeText, AI: true, Text: "What do you believe the policy on student AI tool use in introductory college biology should be?"},
	{ID: "q46", Section: 6, Type: TypeSingleChoice, AI: true, Text: "Should AP Biology courses explicitly teach students how to use AI tools responsibly as a study and research aid?",
		Options: []string{"Yes, this should be a formal part of the curriculum", "Yes, informally as good academic practice", "Only if paired with explicit instruction on limitations and academic integrity", "No, AI tool use should be discouraged in high school science courses", "No opinion"}},

	// Section 7
	{ID: "q47", Section: 7, Type: TypeMatrix, Text: "How important is it for AP Biology courses to emphasize the following? (1 = Not Important, 5 = Critically Important)",
		Options: []string{"1", "2", "3", "4", "5"},
		Subs: []string{
			"Conceptual understanding over memorization of facts",
			"Practice interpreting and analyzing data from graphs and tables",
			"Open-ended, inquiry-based laboratory investigations",
			"Scientific writing (formal lab reports, written explanations)",
			"Application of concepts to novel real-world or experimental scenarios",
			"Reading and summarizing scientific literature or articles",
			"Practicing exam strategies for long-answer and free-response questions",
			"Developing persistence and tolerance for academic challenge",
			"Teaching responsible and effective use of technology and AI tools",
			"Critical evaluation of AI-generated content for accuracy and scientific validity",
		}},
	{ID: "q48", Section: 7, Type: TypeFreeText, Text: "What are the most valuable things a high school biology teacher can do to prepare students for college-level biology? Be as specific as possible:"},
	{ID: "q49", Section: 7, Type: TypeFreeText, Text: "What do high school biology teachers most commonly do that inadvertently leaves students underprepared for college biology? Be as specific as possible:"},
	{ID: "q50", Section: 7, Type: TypeMultiChoice, AI: true, Text: "Should AP Biology teachers integrate AI tools into instruction in any of the following ways? (Select all that apply)",
		Options: []string{"Using AI to generate hypotheses or brainstorm experimental designs (with critical evaluation)", "Assigning students to use and critically evaluate AI-generated biology content", "Using AI tools for personalized practice and concept review", "Demonstrating how AI tools can produce inaccurate scientific content", "Teaching students how to cite and disclose AI tool use appropriately", "None — AI tools should not be integrated into AP Biology instruction", "Other"}},
	{ID: "q51", Section: 7, Type: TypeFreeText, AI: true, Text: "What specific guidance would you give to an AP Biology teacher on preparing students to navigate AI tools responsibly in a college biology environment?"},

	// Section 8
	{ID: "q52", Section: 8, Type: TypeMultiChoice, Text: "How is the final grade in your introductory biology course primarily determined? (Select all that apply)",
		Options: []string{"Lecture exams / written tests", "Laboratory practicals or lab reports", "Quizzes (announced or unannounced)", "Written assignments or research papers", "Participation / in-class activities", "Final project or presentation", "Standardized or cumulative final exam", "Other"}},
	{ID: "q53", Section: 8, Type: TypeSingleChoice, Text: "Approximately what percentage of the final grade is determined by major exams (midterms and/or finals)?",
		Options: []string{"Less than 25%", "25–40%", "41–60%", "61–75%", "More than 75%"}},
	{ID: "q54", Section: 8, Type: TypeSingleChoice, Text: "Do you offer opportunities for students to retake or reassess major exams?",
		Options: []string{"Yes, students may retake full major exams", "Yes, but only certain portions or selected questions", "Yes, in certain circumstances (e.g., documented illness or emergency only)", "No, major exams are not retaken but other work can substitute for a low score", "No, major exams cannot be retaken or replaced under any circumstance"}},
	{ID: "q55", Section: 8, Type: TypeFreeText, Text: "If you offer any form of exam reassessment or grade recovery, please describe the policy (conditions, score caps, effort requirements):"},
	{ID: "q56", Section: 8, Type: TypeSingleChoice, Text: "Do students receive ongoing formative feedback throughout the term?",
		Options: []string{"Yes, frequently — students receive regular formative feedback throughout the course", "Yes, occasionally — some formative feedback is provided but not consistently", "Rarely — most feedback comes from major graded assessments", "No — graded assessments are the primary means by which students gauge their progress"}},
	{ID: "q57", Section: 8, Type: TypeSingleChoice, Text: "How do you handle late work in your course?",
		Options: []string{"Late work is accepted with no penalty", "Late work is accepted with a point deduction", "Late work is accepted within a set window (e.g., 24–72 hours) with or without penalty", "Late work is generally not accepted except under documented extenuating circumstances", "Late work is never accepted", "Policy varies by assignment type"}},
	{ID: "q58", Section: 8, Type: TypeSingleChoice, AI: true, Text: "Do you use any AI-based tools to detect AI-generated student work?",
		Options: []string{"Yes, routinely for all submitted work", "Yes, selectively when I have reason to suspect AI use", "No, but I am considering it", "No, and I do not plan to use AI detection tools", "My institution prohibits or discourages third-party AI detection tools"}},
	{ID: "q59", Section: 8, Type: TypeScale, AI: true, Text: "How confident are you in your ability to identify AI-generated or AI-assisted work without detection software?",
		Options: []string{"Not at all Confident", "Slightly Confident", "Moderately Confident", "Very Confident", "Extremely Confident"}},
	{ID: "q60", Section: 8, Type: TypeFreeText, AI: true, Text: "Are there other classroom policies regarding technology or AI tool use that AP Biology teachers should be aware of?"},

	// Section 9
	{ID: "q61", Section: 9, Type: TypeScale, Text: "On a scale of 1–10 (1 = Not at all prepared, 10 = Exceptionally prepared), what number best represents the average preparedness of students entering your introductory biology course?"},
	{ID: "q62", Section: 9, Type: TypeFreeText, Text: "If you could send one message to every AP Biology teacher in the country about preparing students for college-level biology, what would you say?"},
	{ID: "q63", Section: 9, Type: TypeFreeText, AI: true, Text: "Looking broadly at the future of biology education, how do you think AI tools will most significantly change what students need to know and be able to do when they arrive in college?"},
	{ID: "q64", Section: 9, Type: TypeFreeText, AI: true, Text: "Are there AI or technology-related skills you now consider essential for incoming biology students? If so, what are they?"},
	{ID: "q65", Section: 9, Type: TypeFreeText, Text: "Is there anything important about student preparedness or the high school to college transition that this survey did not address? Please share any additional thoughts:"},
}

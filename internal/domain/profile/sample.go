package profile

func intPtr(v int) *int { return &v }

// SampleProfile is the document written by the seed endpoint and script.
func SampleProfile() *Profile {
	p := &Profile{
		Name:     "Gulab Chand Meena",
		Email:    "chndshara@gmail.com",
		Headline: "Software Developer Trainee",
		Summary:  "A passionate developer with hands-on experience in full-stack development, database integration, and game development.",
		Location: "Jaipur, Rajasthan",
		Skills: []string{
			"JavaScript", "React", "Node.js", "MongoDB", "Express.js",
			"Redis", "CSS", "Tailwind", "GraphQL", "C++",
		},
		Projects: []Project{
			{
				Title:       "Poker Game",
				Description: "Developed the backend for a real-time multiplayer poker game using Node.js. Implemented Socket.IO for seamless communication, Redis for caching, and MongoDB for storing user data and game sessions.",
				Links:       []string{"https://github.com/your-repo/poker-game"},
				Skills:      []string{"Node.js", "Redis", "MongoDB", "Socket.IO"},
			},
			{
				Title:       "Alumni Connect: Bridging Futures",
				Description: "Developed a full-stack web application to connect college students with alumni, enabling advice sharing and job referral opportunities.",
				Links:       []string{"https://github.com/your-repo/alumni-connect"},
				Skills: []string{
					"React.js", "Node.js", "MongoDB", "Express.js", "Cloudinary",
					"CSS", "HTML", "JavaScript", "Axios",
				},
			},
			{
				Title:       "Task Scheduling Web Application",
				Description: "Built a task scheduling web app with secure authentication, drag-and-drop functionality for task prioritization, and task list management.",
				Links:       []string{"https://github.com/your-repo/task-scheduler"},
				Skills:      []string{"React.js", "Node.js", "MongoDB", "Express.js", "JWT"},
			},
		},
		Work: []WorkEntry{
			{
				Company:     "Mobzway Technology",
				Role:        "Software Developer Trainee",
				StartDate:   "May 2024",
				EndDate:     "Jan 2025",
				Description: "Integrated MongoDB Atlas for cloud-based data storage solutions, optimized database queries for high-traffic applications, and developed interactive user interfaces using React.",
				Skills:      []string{"MongoDB", "React.js", "Node.js", "Phaser", "Redis"},
			},
			{
				Company:     "Navaodita Infotech",
				Role:        "Full-Stack Developer Intern",
				StartDate:   "Mar 2024",
				EndDate:     "Apr 2024",
				Description: "Developed a responsive admin panel using React and worked with RESTful APIs to ensure smooth data flow across the application.",
				Skills:      []string{"React.js", "Node.js", "Redux", "Context API", "RESTful APIs"},
			},
		},
		Education: []EducationEntry{
			{
				Institution: "Jaipur Engineering College, Jaipur",
				Degree:      "Bachelor of Technology",
				Field:       "Computer Science Engineering",
				StartYear:   intPtr(2020),
				EndYear:     intPtr(2024),
			},
			{
				Institution: "Rajasthan Board of Secondary Education",
				Degree:      "Class 12th",
				Field:       "PCM",
				EndYear:     intPtr(2018),
			},
			{
				Institution: "Rajasthan Board of Secondary Education",
				Degree:      "Class 10th",
				EndYear:     intPtr(2016),
			},
		},
		Links: &Links{
			Github:    "https://github.com/your-username",
			Linkedin:  "https://linkedin.com/in/your-profile",
			Portfolio: "https://yourportfolio.com",
		},
	}
	p.Normalize()
	return p
}

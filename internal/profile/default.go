package profile

// Default returns the built-in profile. Update it when projects or skills change.
func Default() Profile {
	return Profile{
		Name:      "Anuj Chaudhari",
		Title:     "Frontend Developer",
		Location:  "jalgaon, India",
		Email:     "anujpvt2311@gmail.com",
		GitHub:    "https://github.com/anujsc",
		Portfolio: "https://anujportfoolioo.netlify.app",
		LinkedIn:  "https://www.linkedin.com/in/anuj-chaudhari-78a0a9256",
		Experience: []Experience{
			{
				Role:    "Software Developer-Trainee (Apprenticeship)",
				Company: "Enprosys Infotech",
				Period:  "Sept 2025 – Present",
				Details: []string{
					"Built an Employee Management System (EMS) using React + TypeScript and Formik.",
					"Integrated 15+ RESTful APIs with reusable utility functions.",
					"Collaborated using feature branches and code reviews on GitHub.",
				},
			},
		},
		Skills: []SkillCategory{
			{Category: "languages", Items: []string{"JavaScript", "C++", "SQL"}},
			{Category: "frontend", Items: []string{"React.js", "TypeScript", "Tailwind CSS", "Redux Toolkit", "Context API", "HTML5", "CSS3", "GSAP", "Framer Motion"}},
			{Category: "backend", Items: []string{"Node.js", "Express.js", "REST APIs", "Firebase Authentication"}},
			{Category: "databases", Items: []string{"MongoDB", "MySQL", "PostgreSQL"}},
			{Category: "tools", Items: []string{"GitHub", "Postman", "Chrome DevTools", "Vite", "VS Code"}},
			{Category: "devops", Items: []string{"Netlify", "Vercel"}},
		},
		Projects: []Project{
			{
				Key:         "ems",
				Name:        "Employee Management System (EMS)",
				Description: "Internal employee management app built with React, TypeScript and Formik, backed by 15+ RESTful APIs wired through reusable utility functions.",
				Tech:        []string{"React", "TypeScript", "Formik", "REST API"},
				Repo:        "there is no repo for this project",
				Deployed:    "there is no deployed link for this project",
			},
			{
				Key:         "urlshortner",
				Name:        "URL Shortener",
				Description: "Full-stack service using Node.js, Express.js, and MongoDB with click tracking.",
				Tech:        []string{"Node.js", "Express", "MongoDB", "React"},
				Repo:        "https://github.com/anujsc/URL_SHORTNER",
				Deployed:    "https://url-shortner-f-vwjq.onrender.com/",
			},
			{
				Key:         "imgenhancer",
				Name:        "Img Enhancer & Background Remover",
				Description: "Developed a fast, accessible React app for AI-powered image enhancement with Firebase auth, protected routes, dark/light theming, drag-and-drop uploads, lazy loading, and seamless Netlify CI/CD deployment using Vite, TailwindCSS, and external APIs.",
				Tech:        []string{"React", "TailwindCSS", "Firebase"},
				Repo:        "https://github.com/anujsc/ImgEnhancer",
				Deployed:    "https://img-enhancer.netlify.app/",
			},
			{
				Key:         "scsdb",
				Name:        "SCSDB TV App",
				Description: "Built and optimized a responsive movie app (1,000+ titles) using React, Redux, and React Router — boosting Core Web Vitals/Lighthouse scores, reducing bounce rate by 20%, and increasing user engagement through fast search, performance gains, and a visually appealing UI.",
				Tech:        []string{"React", "Redux", "Movie API"},
				Repo:        "https://github.com/anujsc/SCSDB",
				Deployed:    "https://scsdb.netlify.app/",
			},
			{
				Key:         "portfolio",
				Name:        "Portfolio Website",
				Description: "Personal portfolio built with React and Tailwind CSS, GSAP, Framer-Motion etc showcasing projects and skills with smooth animations.",
				Tech:        []string{"React", "TailwindCSS", "GSAP", "Framer-Motion"},
				Repo:        "https://github.com/anujsc/Portfolio",
				Deployed:    "https://anujportfoolioo.netlify.app",
			},
			{
				Key:         "chatbot",
				Name:        "Portfolio AI Chatbot",
				Description: "AI-powered chatbot for Anuj Chaudhari's portfolio using React and Groq API to answer questions about projects and skills.",
				Tech:        []string{"React", "Groq API"},
				Repo:        "https://github.com/anujsc/Anuj_ChatBot",
				Deployed:    "https://anujchatbot.netlify.app/",
			},
		},
		Education: Education{
			Degree:    "B.E. in Computer Engineering",
			Institute: "Sinhgad Institute of Technology, Lonavala",
			Period:    "June 2021 – July 2025",
			CGPA:      "7.51",
		},
		Certifications: []string{
			"Debugging JS / NodeJS – Udemy",
			"UX Design Virtual Experience – Forage",
		},
	}
}

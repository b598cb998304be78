// Package content holds the static portfolio catalog.
package content

import "github.com/Zachkp/portfolio/internal/marquee"

var (
	Name    = "Zach"
	Tagline = "Software developer building tools for the terminal and the web."

	AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
different language, experimenting with tools, or solving tricky problems.
When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends,
or chasing down a new challenge outside the screen.`
)

type Project struct {
	Title       string
	Description string
	Link        string
	Tags        []string
}

type Entry struct {
	Title        string
	Organization string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

type Certificate struct {
	Name   string
	Issuer string
	Date   string
	Code   string
}

var Projects = []Project{
	{
		Title: "Terminal Mail",
		Description: `A terminal-based email client built in Go with fuzzyfinder capabilities
using the Charmbracelet TUI framework and go-imap.`,
		Tags: []string{"Go", "Bubble Tea", "IMAP"},
	},
	{
		Title: "Terminal Music",
		Description: `A terminal-based music streaming application built in Go with an elegant TUI
interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`,
		Tags: []string{"Go", "mpv", "yt-dlp"},
	},
	{
		Title: "Game Recommender",
		Description: `A machine learning-powered web application that uses TF-IDF vectorization and cosine
similarity to recommend games based on content analysis, featuring interactive data visualizations and
real-time filtering by user reviews and ratings.`,
		Tags: []string{"Python", "scikit-learn"},
	},
	{
		Title: "Portfolio",
		Description: `A modern, responsive portfolio website built with Go, Gin framework, and HTMX for
dynamic interactions, with a terminal edition rendered by Bubble Tea.`,
		Tags: []string{"Go", "Gin", "HTMX"},
	},
}

var Work = []Entry{
	{
		Title:        "Presentation Expert",
		Organization: "Target",
		StartDate:    "Aug 2023",
		EndDate:      "Present",
		LogoPath:     "images/TargetLogo.jpg",
		BulletPoints: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
	},
	{
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		StartDate:    "Aug 2016",
		EndDate:      "Present",
		LogoPath:     "images/jasonsCateringLogo.png",
		BulletPoints: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation",
		},
	},
}

var Education = []Entry{
	{
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		StartDate:    "Sept 2019",
		EndDate:      "May 2023",
		LogoPath:     "images/WGU-logo.png",
		BulletPoints: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
}

var Certificates = []Certificate{
	{Name: "Project+", Issuer: "CompTIA", Date: "July 2022", Code: "SRRRPGBSWBRQCCDJ"},
}

// Stack is the default tech-stack ticker.
var Stack = []marquee.Item{
	marquee.NodeItem{Content: "Go", Link: "https://go.dev", Color: "#00ADD8"},
	marquee.NodeItem{Content: "Gin", Link: "https://gin-gonic.com", Color: "#38B2AC"},
	marquee.NodeItem{Content: "HTMX", Link: "https://htmx.org", Color: "#3D72D7"},
	marquee.NodeItem{Content: "Tailwind CSS", Link: "https://tailwindcss.com", Color: "#38BDF8"},
	marquee.NodeItem{Content: "Alpine.js", Link: "https://alpinejs.dev", Color: "#77C1D2"},
	marquee.NodeItem{Content: "Bubble Tea", Link: "https://github.com/charmbracelet/bubbletea", Color: "#F25D94"},
	marquee.NodeItem{Content: "SQLite", Color: "#4F9FCF"},
	marquee.NodeItem{Content: "Python", Color: "#FFD43B"},
	marquee.NodeItem{Content: "Linux", Color: "#FCC624"},
	marquee.NodeItem{Content: "Docker", Color: "#2496ED"},
}

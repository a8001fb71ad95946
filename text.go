package main

var (
	AboutMe = []string{
		`Sebagai mahasiswa Informatika semester akhir, saya memiliki hasrat mendalam pada dunia pengembangan web.
Saya percaya bahwa kode yang bersih sama pentingnya dengan desain yang indah.`,

		`Saya tidak hanya menulis kode, tetapi juga memecahkan masalah. Fokus saya adalah menciptakan solusi yang
skalabel, mudah dipelihara, dan memberikan pengalaman pengguna yang luar biasa (*User Experience*).`,
	}

	ProjectOne = `Platform manajemen inventaris dan analitik penjualan real-time dengan visualisasi data interaktif.`

	ProjectTwo = `Antarmuka obrolan minimalis yang terintegrasi dengan OpenAI API, mendukung markdown dan syntax highlighting.`

	ProjectThree = `Aplikasi pemesanan perjalanan dengan fitur pencarian destinasi, filter harga, dan integrasi peta.`
)

// DefaultContent is the portfolio shown when no CONTENT_FILE is configured.
func DefaultContent() *Content {
	return &Content{
		Profile: Profile{
			Name:      "Alex Developer",
			Brand:     "Dev",
			Accent:    "Portfolio",
			Badge:     "Available for Freelance & Full-time",
			Headline:  "Membangun Pengalaman Digital yang",
			Highlight: "Memukau & Fungsional",
			Intro:     "Mahasiswa Teknik Informatika yang fokus menciptakan aplikasi web modern, cepat, dan responsif.",
			ImageURL:  "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?auto=format&fit=crop&q=80&w=600",
			BioTitle:  "Menjembatani Desain & Teknologi",
			Bio:       AboutMe,
			StatValue: "3.95",
			StatLabel: "IPK Saat Ini",
		},
		Nav: []NavEntry{
			{Label: "Tentang", Anchor: "#about"},
			{Label: "Keahlian", Anchor: "#skills"},
			{Label: "Proyek", Anchor: "#projects"},
			{Label: "Kontak", Anchor: "#contact"},
		},
		Skills: []SkillCategory{
			{Name: "Frontend", Icon: "layout", Tools: []string{"React.js", "Next.js", "Tailwind CSS", "Framer Motion"}},
			{Name: "Backend", Icon: "database", Tools: []string{"Node.js", "PostgreSQL", "Express", "Firebase"}},
			{Name: "Tools", Icon: "terminal", Tools: []string{"Git", "Docker", "VS Code", "Figma"}},
		},
		Projects: []ProjectEntry{
			{
				Title:       "E-Commerce Dashboard",
				Description: ProjectOne,
				Tags:        []string{"React", "Chart.js", "Supabase"},
				SourceURL:   "#",
				DemoURL:     "#",
				ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
			},
			{
				Title:       "AI Chat Interface",
				Description: ProjectTwo,
				Tags:        []string{"Next.js", "Tailwind", "OpenAI API"},
				SourceURL:   "#",
				DemoURL:     "#",
				ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=800",
			},
			{
				Title:       "Travel Booking App",
				Description: ProjectThree,
				Tags:        []string{"React Native", "Firebase", "Maps API"},
				SourceURL:   "#",
				DemoURL:     "#",
				ImageURL:    "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?auto=format&fit=crop&q=80&w=800",
			},
		},
		Contacts: []ContactLink{
			{Label: "Email", Display: "hello@alexdev.com", URL: "mailto:hello@alexdev.com", Icon: "mail"},
			{Label: "WhatsApp", Display: "+62 812 3456 789", URL: "https://wa.me/628123456789", Icon: "message-circle"},
			{Label: "Instagram", Display: "@alexdeveloper", URL: "https://instagram.com/alexdeveloper", Icon: "instagram"},
		},
		Socials: []ContactLink{
			{Label: "LinkedIn", URL: "https://linkedin.com", Icon: "linkedin"},
			{Label: "GitHub", URL: "https://github.com", Icon: "github"},
		},
		Sections: Sections{
			About:    SectionCopy{Title: "Tentang Saya", Subtitle: "Mengenal lebih jauh tentang siapa saya dan apa yang saya lakukan."},
			Skills:   SectionCopy{Title: "Tech Stack & Keahlian", Subtitle: "Daftar teknologi dan alat yang saya gunakan untuk mewujudkan ide."},
			Projects: SectionCopy{Title: "Galeri Proyek", Subtitle: "Beberapa proyek pilihan yang telah saya kerjakan."},
			Contact:  SectionCopy{Title: "Hubungi Saya", Subtitle: "Tertarik untuk berkolaborasi atau punya penawaran menarik? Mari terhubung."},
		},
		ContactBlurb:    "Saya selalu terbuka untuk mendiskusikan proyek baru, ide kreatif, atau kesempatan menjadi bagian dari visi Anda.",
		ResumePath:      "/resume.pdf",
		ResumeLabel:     "Unduh Resume",
		MoreProjectsURL: "https://github.com",
		MoreProjects:    "Lihat Proyek Lainnya di GitHub",
		Footer:          "Didesain dan dibangun dengan hati-hati menggunakan Go, Gin & HTMX.",
	}
}

package job

import "time"

// Seed returns the fixed collection the store starts the session with.
// Posting dates are offsets from start-up time so the recency gate
// behaves the same on every boot.
func Seed(now time.Time) []Listing {
	return []Listing{
		{
			ID:          "2HqZzF0cQpT5nYxW3kVdJb8mLrA",
			Slug:        "secondary-school-teacher-ministry-of-education",
			Title:       "Secondary School Teacher",
			Company:     "Ministry of Education",
			LogoURL:     "https://placehold.co/100x100.png",
			Location:    "Lusaka, Lusaka",
			Salary:      "ZMW 8,000 - ZMW 12,000",
			Type:        TypeGovernment,
			Description: "Seeking a qualified teacher for a government secondary school in Lusaka.",
			Tags:        []string{"Education", "Teaching", "Government"},
			PostedDate:  now.AddDate(0, 0, -2),
			Details: Details{
				Tasks: []string{
					"Prepare and deliver lessons in line with the national curriculum",
					"Assess learner progress and keep accurate records",
					"Participate in departmental planning and school activities",
				},
				TaskExamples: []string{
					"Set and mark end-of-term examinations for Grade 10 to 12",
					"Run a weekly remedial class for struggling learners",
				},
				WhoWeAreLookingFor: []string{
					"Degree or diploma in education from a recognised institution",
					"Registered with the Teaching Council of Zambia",
					"At least two years of classroom experience",
				},
				WillBeAPlus: []string{
					"Experience with learners with special educational needs",
				},
				WhatWeOffer: []string{
					"Government salary scale with housing allowance",
					"Pension under the public service scheme",
				},
			},
		},
		{
			ID:          "2HqZzGtYw4R9sBvN6cXeKf1mPdQ",
			Slug:        "registered-nurse-ndola-central-hospital",
			Title:       "Registered Nurse",
			Company:     "Ndola Central Hospital",
			LogoURL:     "https://placehold.co/100x100.png",
			Location:    "Ndola, Copperbelt",
			Salary:      "ZMW 9,000 - ZMW 14,000",
			Type:        TypeHealthcare,
			Description: "We are looking for a compassionate Registered Nurse to join our team at a major hospital in the Copperbelt.",
			Tags:        []string{"Healthcare", "Nursing", "Public Sector"},
			PostedDate:  now.AddDate(0, 0, -4),
			Details: Details{
				Tasks: []string{
					"Provide direct patient care on general and specialised wards",
					"Administer medication and monitor patient response",
					"Maintain accurate nursing records",
				},
				TaskExamples: []string{
					"Triage incoming patients in the outpatient department",
					"Support theatre staff during scheduled surgeries",
				},
				WhoWeAreLookingFor: []string{
					"Diploma or degree in nursing",
					"Valid practising licence from the Nursing and Midwifery Council of Zambia",
				},
				WillBeAPlus: []string{
					"Critical care or midwifery specialisation",
				},
				WhatWeOffer: []string{
					"Shift allowances and uniform provision",
					"Continuous professional development support",
				},
			},
		},
		{
			ID:          "2HqZzJcM8dW2hTnU5gYqRv7kSxB",
			Slug:        "ict-officer-zambia-revenue-authority",
			Title:       "ICT Officer",
			Company:     "Zambia Revenue Authority",
			LogoURL:     "https://placehold.co/100x100.png",
			Location:    "Kitwe, Copperbelt",
			Salary:      "ZMW 10,000 - ZMW 15,000",
			Type:        TypeGovernment,
			Description: "Join our ICT team to support and maintain our critical systems.",
			Tags:        []string{"ICT", "Government", "Networking"},
			PostedDate:  now.AddDate(0, 0, -7),
			Details: Details{
				Tasks: []string{
					"Maintain local area networks across regional offices",
					"Provide first and second line support to internal users",
					"Monitor system availability and escalate incidents",
				},
				TaskExamples: []string{
					"Roll out workstation upgrades at the Kitwe office",
					"Investigate and resolve VPN connectivity faults",
				},
				WhoWeAreLookingFor: []string{
					"Degree in computer science or related field",
					"Hands-on networking experience (Cisco or equivalent)",
				},
				WillBeAPlus: []string{
					"ITIL foundation certificate",
					"Experience with tax administration systems",
				},
				WhatWeOffer: []string{
					"Competitive public sector package",
					"Medical scheme for employee and dependants",
				},
			},
		},
		{
			ID:          "2HqZzLw6PeV1jCmK9bZsXg3nQtF",
			Slug:        "construction-foreman-zhong-gan-engineering",
			Title:       "Construction Foreman",
			Company:     "Zhong-Gan Engineering",
			LogoURL:     "https://placehold.co/100x100.png",
			Location:    "Lusaka, Lusaka",
			Salary:      "ZMW 7,000 - ZMW 11,000",
			Type:        TypeFullTime,
			Description: "Supervise construction projects and ensure they are completed on time and within budget.",
			Tags:        []string{"Construction", "Supervision", "Civil Engineering"},
			PostedDate:  now.AddDate(0, 0, -12),
			Details: Details{
				Tasks: []string{
					"Coordinate site crews and subcontractors",
					"Enforce health and safety procedures on site",
					"Track material usage against project budgets",
				},
				TaskExamples: []string{
					"Oversee concrete pours for a multi-storey development",
					"Produce weekly progress reports for the project manager",
				},
				WhoWeAreLookingFor: []string{
					"Craft certificate or diploma in construction",
					"Five years of site supervision experience",
				},
				WillBeAPlus: []string{
					"Valid driver's licence",
				},
				WhatWeOffer: []string{
					"Project completion bonuses",
					"On-site meals and transport",
				},
			},
		},
		{
			ID:          "2HqZzNx4KbU7fRwQ2mYvTd9cJgH",
			Slug:        "accountant-airtel-zambia",
			Title:       "Accountant",
			Company:     "Airtel Zambia",
			LogoURL:     "https://placehold.co/100x100.png",
			Location:    "Lusaka, (Hybrid)",
			Salary:      "ZMW 12,000 - ZMW 18,000",
			Type:        TypeHybrid,
			Description: "An exciting opportunity for an experienced accountant to join a leading telecommunications company.",
			Tags:        []string{"Accounting", "Finance", "ACCA"},
			PostedDate:  now.AddDate(0, 0, -1),
			Details: Details{
				Tasks: []string{
					"Prepare monthly management accounts",
					"Reconcile revenue across billing platforms",
					"Support statutory audits and tax filings",
				},
				TaskExamples: []string{
					"Close the month-end ledger within five working days",
					"Prepare VAT returns for submission to ZRA",
				},
				WhoWeAreLookingFor: []string{
					"ACCA, CIMA or ZICA qualification",
					"Three years in a finance role, telecoms preferred",
				},
				WillBeAPlus: []string{
					"Experience with Oracle Financials",
				},
				WhatWeOffer: []string{
					"Hybrid working arrangement",
					"Performance bonus and airtime allowance",
				},
			},
		},
		{
			ID:          "2HqZzQr3GaS5dPzL8kWuVc1mXbT",
			Slug:        "project-officer-wwf-zambia",
			Title:       "Project Officer (Conservation)",
			Company:     "WWF Zambia",
			LogoURL:     "https://placehold.co/100x100.png",
			Location:    "Mongu, Western",
			Salary:      "Negotiable",
			Type:        TypeNGO,
			Description: "Coordinate community conservation projects in the Western Province wetlands.",
			Tags:        []string{"NGO", "Conservation", "Community"},
			PostedDate:  now.AddDate(0, 0, -40),
			Details: Details{
				Tasks: []string{
					"Plan and monitor community-led conservation activities",
					"Liaise with traditional leadership and district officials",
					"Report against donor logframes",
				},
				TaskExamples: []string{
					"Facilitate fisheries co-management committee meetings",
				},
				WhoWeAreLookingFor: []string{
					"Degree in natural resource management or similar",
					"Fluency in Lozi and English",
				},
				WillBeAPlus: []string{
					"Motorcycle riding licence",
				},
				WhatWeOffer: []string{
					"Field allowances and flexible leave",
				},
			},
		},
	}
}

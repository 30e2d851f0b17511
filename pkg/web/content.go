package web

// PageContent is the copy rendered on the landing page.
type PageContent struct {
	BrandName     string
	BrandInitial  string
	Regions       string
	Affiliation   string
	Tagline       string
	Headline      string
	Lede          string
	Stats         []Stat
	Assurances    []string
	HeroImages    []string
	Signal        Signal
	TrustTiles    []string
	Services      []ServiceOffer
	Coaching      Coaching
	Markets       []Market
	Insights      []Insight
	Process       []ProcessStep
	Testimonial   Testimonial
	Concierge     Concierge
	Questions     []Question
	FooterTagline string
}

type Stat struct {
	Value string
	Label string
}

type Signal struct {
	Title  string
	Detail string
}

type ServiceOffer struct {
	Title       string
	Description string
	Points      []string
	CTA         string
	Target      string
}

type Coaching struct {
	Heading string
	Body    string
	Points  []string
	Image   string
}

type Market struct {
	Title       string
	Description string
	Tag         string
}

type Insight struct {
	Title       string
	Description string
}

type ProcessStep struct {
	Title string
	Text  string
}

type Testimonial struct {
	Quote       string
	Attribution string
	ProofPoints []string
}

type Concierge struct {
	Phone      string
	Email      string
	Offices    string
	Compliance []string
}

type Question struct {
	Q string
	A string
}

// DefaultPageContent returns the Hunt Luxury Investments copy.
func DefaultPageContent(conciergeEmail string) PageContent {
	return PageContent{
		BrandName:    "Hunt Luxury Investments",
		BrandInitial: "H",
		Regions:      "VA • DC • MD • PA",
		Affiliation:  "Associate Broker • Long & Foster",
		Tagline:      "Ultimate Luxury Service • Investment‑Grade Strategy",
		Headline:     "Find. Negotiate. Own with Intention.",
		Lede: "We help discerning buyers and investors in VA, DC, MD, and PA acquire luxury properties and build wealth through " +
			"data‑driven strategy, elite negotiation, equipment rentals for show‑ready prep, and one‑on‑one coaching.",
		Stats: []Stat{
			{Value: "$250M+", Label: "Closed & Advised"},
			{Value: "$35k", Label: "Avg. Negotiation Gain"},
			{Value: "150+", Label: "Client 5★ Reviews"},
		},
		Assurances: []string{"Fiduciary • Boutique • Discreet", "By‑referral, high‑touch"},
		HeroImages: []string{
			"https://images.unsplash.com/photo-1505691723518-36a5ac3b2b8f?q=80&w=1400&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=1400&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1493809842364-78817add7ffb?q=80&w=1400&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1501183638710-841dd1904471?q=80&w=1400&auto=format&fit=crop",
		},
		Signal: Signal{
			Title:  "This Week’s Signal",
			Detail: "Northern VA: luxury DOM trending ↓, cash share ↑",
		},
		TrustTiles: []string{
			"Luxury Resales & New Dev.",
			"1031 & Portfolio Strategy",
			"Elite Negotiation Coaching",
			"Equipment Rental for Prep",
		},
		Services: []ServiceOffer{
			{
				Title:       "Luxury Home & Estate Search",
				Description: "Off‑market access, private tours, discreet representation.",
				Points: []string{
					"Curated inventory across VA/DC/MD/PA",
					"Architectural and lifestyle matching",
					"Vendor network: staging, lighting, AV, wine rooms",
				},
				CTA:    "Request Access",
				Target: "#contact",
			},
			{
				Title:       "Investment Strategy & Analysis",
				Description: "Market‑backed models for ROI, risk, and timing.",
				Points: []string{
					"Hold/Sell/1031 exchange scenarios",
					"Rent vs. Buy vs. Develop financials",
					"$ / SqFt, DOM, absorption, cash share trends",
				},
				CTA:    "See a Sample",
				Target: "#insights",
			},
			{
				Title:       "Negotiation Coaching + Prep Rentals",
				Description: "Sharpen your edge and present flawlessly.",
				Points: []string{
					"1:1 strategy sessions for offers & counters",
					"Luxury prep equipment rentals (pro lighting, decor, open‑house kits)",
					"Agent‑to‑agent positioning & scripts",
				},
				CTA:    "Book a Session",
				Target: "#contact",
			},
		},
		Coaching: Coaching{
			Heading: "Master the Art & Science of the Deal",
			Body: "From anchoring and concessions to timeline leverage and escalation terms—learn the systems behind winning offers, " +
				"minimizing risk, and protecting long‑term value in competitive luxury markets.",
			Points: []string{
				"Offer architecture & appraisal buffers",
				"Counter‑moves, walk‑away points, and scripts",
				"Vendor readiness to reduce uncertainty and boost price",
			},
			Image: "https://images.unsplash.com/photo-1582401656171-2963caa6d7a4?q=80&w=1400&auto=format&fit=crop",
		},
		Markets: []Market{
			{Title: "Virginia", Description: "Northern VA, Arlington, Great Falls, McLean, Alexandria.", Tag: "NOVA"},
			{Title: "District of Columbia", Description: "Georgetown, Kalorama, West End, Cathedral Heights.", Tag: "DC"},
			{Title: "Maryland", Description: "Bethesda, Chevy Chase, Potomac, Annapolis.", Tag: "MD"},
			{Title: "Pennsylvania", Description: "Philadelphia Main Line, Rittenhouse, Chestnut Hill.", Tag: "PA"},
		},
		Insights: []Insight{
			{Title: "Luxury Inventory Pulse", Description: "Weekly update on new-to-market estates, DOM, and price‑improvement velocity."},
			{Title: "Cash vs. Financed Share", Description: "How liquidity shifts negotiation power by sub‑market and price band."},
			{Title: "Rent vs. Hold vs. 1031", Description: "Scenario analysis with cap‑rate bands and tax impact view."},
		},
		Process: []ProcessStep{
			{Title: "Discover", Text: "Define goals, lifestyle, risk and time horizon."},
			{Title: "Model", Text: "Market comps, absorption, and scenario planning."},
			{Title: "Negotiate", Text: "Terms, timing, buffers, and win‑win positioning."},
			{Title: "Close & Grow", Text: "Vendors, leasing, and portfolio optimization."},
		},
		Testimonial: Testimonial{
			Quote: "“They don’t just show homes—they architect outcomes. Our Great Falls purchase landed under appraised value with seller credits, " +
				"and their post‑close plan turned it into a cash‑flowing asset within 90 days.”",
			Attribution: "Private Client • Great Falls, VA",
			ProofPoints: []string{
				"$47k average net improvement via negotiation",
				"12‑day median DOM (luxury band)",
				"150+ 5★ client reviews",
			},
		},
		Concierge: Concierge{
			Phone:   "(703) 555‑0187",
			Email:   conciergeEmail,
			Offices: "Tysons • Georgetown • Bethesda • Philadelphia",
			Compliance: []string{
				"Licensed in VA, DC, MD, PA",
				"Long & Foster • Associate Broker (VA)",
				"Equal Housing Opportunity",
			},
		},
		Questions: []Question{
			{
				Q: "Do you work with off‑market or private listings?",
				A: "Yes—through our network we often access private opportunities and whisper listings across VA/DC/MD/PA.",
			},
			{
				Q: "How does the equipment rental work?",
				A: "We maintain curated kits (lighting, decor, signage) to elevate showings and listings; concierge delivery available.",
			},
			{
				Q: "What does coaching cover?",
				A: "Offer design, tactical concessions, agent‑to‑agent strategy, and timing—tailored to your specific property goals.",
			},
		},
		FooterTagline: "Hunt Luxury Investments — Luxury Real Estate & Investment Advisory",
	}
}

package site

import (
	"fmt"
	"strings"
)

func processSteps() []Card {
	return []Card{
		{
			Title:    "Tell Us About Your Property",
			Subtitle: "Step 1",
			Body:     "Share basic details about your house and situation through our simple form. Takes just 2 minutes to complete.",
		},
		{
			Title:    "Get Your Cash Offer",
			Subtitle: "Step 2",
			Body:     "Receive a fair, no-obligation offer within 24 hours based on your property's current market value.",
		},
		{
			Title:    "Choose Your Closing Date",
			Subtitle: "Step 3",
			Body:     "Accept the offer and pick a closing date that works perfectly for you. We handle all the paperwork and details.",
		},
	}
}

func features(c Company) []Card {
	return []Card{
		{Title: "Lightning Fast Process", Body: "Get a competitive cash offer within 24 hours and close in as little as 7 days. No waiting for bank approvals or financing delays."},
		{Title: "Buy Any Condition", Body: "We buy houses as-is, which means you don't need to make any repairs, clean, or stage your home before selling."},
		{Title: "Zero Hidden Fees", Body: "Keep more money in your pocket. We cover all closing costs with no hidden fees, commissions, or surprise charges."},
		{Title: "Flexible Closing", Body: "Choose your closing date. Whether you need to close in 7 days or 3 months, we work with your timeline."},
		{Title: "100% Transparent", Body: "No surprises or hidden clauses. Our process is completely transparent from start to finish with clear communication."},
		{Title: "Trusted by Thousands", Body: fmt.Sprintf("Join thousands of satisfied homeowners who chose %s for their house sale and experienced our exceptional service.", c.Name)},
	}
}

func testimonials(c Company) []Card {
	return []Card{
		{Title: "Sarah Mitchell", Subtitle: "Dallas, TX", Rating: 5, Body: fmt.Sprintf("%s made selling my inherited property so easy. They handled everything and I got a fair price without any stress. The whole process took less than 2 weeks!", c.Name)},
		{Title: "Mike Rodriguez", Subtitle: "Houston, TX", Rating: 5, Body: "I needed to sell fast due to a job relocation. They closed in 10 days and took care of all the paperwork. Highly recommend to anyone needing a quick, hassle-free sale!"},
		{Title: "Jennifer Lopez", Subtitle: "Austin, TX", Rating: 5, Body: fmt.Sprintf("My house needed major repairs I couldn't afford. %s bought it as-is and saved me thousands in repair costs. Professional service from start to finish.", c.Name)},
		{Title: "David Chen", Subtitle: "San Antonio, TX", Rating: 5, Body: fmt.Sprintf("After trying to sell through a realtor for 6 months with no luck, %s gave me a fair offer and we closed in 12 days. Should have called them first!", c.Name)},
		{Title: "Maria Garcia", Subtitle: "Fort Worth, TX", Rating: 5, Body: "Going through a divorce and needed to sell quickly. The team was compassionate and professional. They made a difficult time much easier with their transparent process."},
		{Title: "Robert Johnson", Subtitle: "Plano, TX", Rating: 5, Body: "No hidden fees, no surprises, just exactly what they promised. Got my cash offer in 24 hours and closed on my timeline. This is how home selling should be done."},
	}
}

func ctaSection(c Company) Section {
	return Section{
		ID:     "cta",
		Kicker: "Get Started",
		Title:  "Ready to Get Your Cash Offer?",
		Paragraphs: []string{
			"Join thousands of homeowners who chose the faster, easier way to sell. Get your no-obligation cash offer in 24 hours.",
			fmt.Sprintf("Press c for the contact form or call %s.", c.Phone),
		},
	}
}

// ServiceAreas lists where houses are bought.
var ServiceAreas = []string{
	"Dallas, TX",
	"Houston, TX",
	"Austin, TX",
	"San Antonio, TX",
	"Fort Worth, TX",
	"Plano, TX",
	"Arlington, TX",
	"Nationwide Service",
}

// footerSection closes every page with quick links, service areas and the
// contact block.
func footerSection(c Company, pages []Page) Section {
	links := make([]string, len(pages))
	for i, p := range pages {
		links[i] = fmt.Sprintf("%d  %s", i+1, p.Title)
	}
	return Section{
		ID:     "footer",
		Kicker: c.Name,
		Paragraphs: []string{
			"Your trusted partner for fast, fair, and hassle-free home sales across the United States. We buy houses in any condition, on any timeline.",
		},
		Cards: []Card{
			{Title: "Quick Links", Bullets: links},
			{Title: "We Buy Houses In", Body: strings.Join(ServiceAreas, " · ")},
			{Title: "Contact", Bullets: []string{
				"Call: " + c.Phone,
				"Email: " + c.Email,
				"Hours: " + c.Hours,
			}},
		},
	}
}

func homePage(c Company) Page {
	return Page{
		Key:   PageHome,
		Title: "Home",
		Sections: []Section{
			{
				ID:       "hero",
				Kicker:   "Join 500+ happy customers",
				Title:    "Sell Your House in 7 Days for Cash",
				Backdrop: true,
				Paragraphs: []string{
					"Skip the hassle of traditional real estate. Get a fair cash offer, close on your timeline, and walk away with money in your pocket. No repairs, no fees, no stress.",
				},
				Stats: HeroStats(),
			},
			{
				ID:     "process",
				Kicker: "Simple Process",
				Title:  "Sell Your House in 3 Easy Steps",
				Paragraphs: []string{
					"Our streamlined process gets you from listing to cash in hand faster than you ever thought possible. No complicated paperwork or lengthy delays.",
				},
				Cards: processSteps(),
			},
			{
				ID:     "features",
				Kicker: "Why Choose Us",
				Title:  "The Smart Way to Sell Your House",
				Paragraphs: []string{
					"Skip the traditional hassles and get straight to closing. We've revolutionized home selling to be faster, easier, and more profitable for you.",
				},
				Cards: features(c),
			},
			{
				ID:     "testimonials",
				Kicker: "Success Stories",
				Title:  "What Our Customers Say",
				Cards:  testimonials(c),
			},
			ctaSection(c),
		},
	}
}

func howItWorksPage(c Company) Page {
	return Page{
		Key:   PageHowItWorks,
		Title: "How It Works",
		Sections: []Section{
			{
				ID:     "how-intro",
				Kicker: "How It Works",
				Title:  "From First Call to Cash in Hand",
				Paragraphs: []string{
					"Selling your house should be simple. Here is exactly what happens after you reach out.",
				},
			},
			{
				ID:    "how-steps",
				Title: "Three Steps",
				Cards: []Card{
					{
						Title:    "Tell Us About Your Property",
						Subtitle: "Step 1",
						Body:     "Share basic details about your house and situation through our simple form or give us a call. It takes just 2 minutes to complete.",
						Bullets:  []string{"Fill out our simple online form", "Or call us directly for faster service", "No personal information required upfront", "Takes less than 2 minutes"},
					},
					{
						Title:    "Get Your Cash Offer",
						Subtitle: "Step 2",
						Body:     "Receive a fair, no-obligation offer within 24 hours based on your property's current market value and comparable sales in your area.",
						Bullets:  []string{"Offer within 24 hours", "Fair market value assessment", "Based on recent comparable sales", "Transparent pricing breakdown"},
					},
					{
						Title:    "Choose Your Closing Date",
						Subtitle: "Step 3",
						Body:     "Accept the offer and pick a closing date that works perfectly for you. We handle all the paperwork and coordinate with title companies.",
						Bullets:  []string{"Close in as little as 7 days", "Or choose your preferred timeline", "We handle all paperwork", "Professional title company closing"},
					},
				},
			},
			{
				ID:    "how-timeline",
				Title: "Typical Timeline",
				Bullets: []string{
					"Day 1: Submit property information",
					"Day 2: Receive cash offer",
					"Day 3-7: Complete inspection (if needed)",
					"Day 7-14: Close and get paid",
				},
			},
			{
				ID:    "how-benefits",
				Title: "What You Skip",
				Bullets: []string{
					"No repairs or renovations needed",
					"No cleaning or staging required",
					"No real estate agent commissions",
					"No closing costs for you",
					"No lengthy loan approval process",
					"No showings or open houses",
				},
			},
			ctaSection(c),
		},
	}
}

func whyChooseUsPage(c Company) Page {
	return Page{
		Key:   PageWhyUs,
		Title: "Why Choose Us",
		Sections: []Section{
			{
				ID:     "why-intro",
				Kicker: "Why Choose Us",
				Title:  fmt.Sprintf("Why Homeowners Choose %s", c.Name),
				Paragraphs: []string{
					"We built every part of our process around speed, fairness and transparency.",
				},
			},
			{
				ID:    "why-advantages",
				Title: "Our Advantages",
				Cards: []Card{
					{Title: "Lightning Fast Process", Body: "Get a competitive cash offer within 24 hours and close in as little as 7 days.", Bullets: []string{"24-hour offer guarantee", "No waiting for bank approvals", "7-day closing possible", "Instant decision making"}},
					{Title: "Fair Market Value", Body: "We use recent comparable sales and market data to ensure you get a fair price.", Bullets: []string{"Market analysis included", "Transparent pricing", "Competitive offers", "No lowball tactics"}},
					{Title: "Any Condition Accepted", Body: "We buy houses as-is, whether they need major repairs or are move-in ready.", Bullets: []string{"No repairs required", "Any condition accepted", "Damaged properties OK", "Foreclosure situations welcomed"}},
					{Title: "100% Transparent", Body: "No hidden fees, no surprise charges. What we offer is what you get.", Bullets: []string{"No hidden fees", "Clear communication", "Honest assessments", "No surprise charges"}},
					{Title: "Flexible Timeline", Body: "Choose your closing date based on your needs and timeline.", Bullets: []string{"Your timeline choice", "Immediate or delayed closing", "Flexible scheduling", "Work around your needs"}},
					{Title: "Local Experts", Body: "Our team knows the local market and provides personalized service.", Bullets: []string{"Local market knowledge", "Personalized service", "Community focused", "Relationship-based approach"}},
				},
			},
			{
				ID:    "why-compare",
				Title: fmt.Sprintf("Traditional Sale vs. %s", c.Name),
				Bullets: []string{
					"Repairs needed: often expensive vs. none required",
					"Agent commissions: 6-10% of sale price vs. none",
					"Showings: multiple showings vs. one quick visit",
					"Closing certainty: deals can fall through vs. guaranteed cash offer",
					"Time to close: 60-90 days vs. as little as 7 days",
				},
			},
			ctaSection(c),
		},
	}
}

func aboutPage(c Company) Page {
	return Page{
		Key:   PageAbout,
		Title: "About",
		Sections: []Section{
			{
				ID:     "about-hero",
				Kicker: "About Us",
				Title:  c.Name,
				Paragraphs: []string{
					"We're not just another house buying company. We're your partners in making home selling simple, fast, and fair.",
				},
			},
			{
				ID:    "about-story",
				Title: "Our Story",
				Paragraphs: []string{
					fmt.Sprintf("Founded in 2024, %s started with a simple mission: to revolutionize how people sell their homes. We saw too many homeowners struggling with the traditional real estate process - waiting months for sales, paying high commissions, and dealing with endless complications.", c.Name),
					"Today, we've helped over 500 families sell their homes quickly and fairly, and we're just getting started.",
				},
			},
			{
				ID:    "about-values",
				Title: "Our Values",
				Cards: []Card{
					{Title: "Integrity", Body: "Honest offers and clear communication at every step."},
					{Title: "Speed", Body: "Offers in 24 hours and closings on your schedule."},
					{Title: "Care", Body: "Every sale is a life event. We treat it like one."},
				},
			},
			ctaSection(c),
		},
	}
}

func contactPage(c Company) Page {
	return Page{
		Key:   PageContact,
		Title: "Contact",
		Sections: []Section{
			{
				ID:     "contact",
				Kicker: "Contact",
				Title:  "Get Your Cash Offer",
				Paragraphs: []string{
					"Ready to sell your house fast? Fill out the form below and get your no-obligation cash offer within 24 hours.",
				},
				Form: true,
			},
			{
				ID:    "contact-info",
				Title: "Reach Us Directly",
				Bullets: []string{
					"Phone: " + c.Phone,
					"Email: " + c.Email,
					"Office: " + c.Address,
					"Hours: " + c.Hours,
				},
			},
		},
	}
}

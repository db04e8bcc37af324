package catalog

import "mutawazi_proposals/internal/domain/entities"

// Default returns the consulting services catalog. The data is maintained by
// the commercial team and versioned with the code; engine code treats it as a
// read-only lookup table.
func Default() entities.ServiceCatalog {
	return entities.ServiceCatalog{
		"1.0": {
			ID:             "1.0",
			Name:           "AI Strategy & Governance",
			Unit:           "Service",
			DurationMonths: 24,
			Price:          80000.00,
		},
		"1.1": {
			ID:             "1.1",
			Name:           "AI Governance Framework Development",
			Description:    "This includes developing AI governance frameworks aligned with international standards (e.g. ISO/IEC 42001:2023) and the client's vision and objectives",
			Unit:           "Service",
			DurationMonths: 12,
			Price:          40000.00,
		},
		"1.2": {
			ID:             "1.2",
			Name:           "AI Trustworthiness & Risk Assessment",
			Description:    "Incorporates AI risk management models to ensure ethical, bias-mitigated, and secure AI deployment",
			Unit:           "Service",
			DurationMonths: 2,
			Price:          30000.00,
		},
		"1.3": {
			ID:             "1.3",
			Name:           "Ethical AI Policy & Compliance Strategy",
			Description:    "Establishes AI ethics guidelines and ensures alignment with regulatory requirements (e.g. Saudi NDMO policies)",
			Unit:           "Service",
			DurationMonths: 3,
			Price:          15000.00,
		},
		"1.4": {
			ID:             "1.4",
			Name:           "Set up AI Office in compliance with SDAIA",
			Description:    "Assess maturity of AI compliance and set up operating model for AI offices",
			Unit:           "Service",
			DurationMonths: 2,
			Price:          10000.00,
		},
		"2.0": {
			ID:             "2.0",
			Name:           "AI Project & Portfolio Management",
			Unit:           "Service",
			DurationMonths: 18,
			Price:          950000.00,
		},
		"2.1": {
			ID:             "2.1",
			Name:           "AI-Driven PMO Setup & Consultancy",
			Description:    "Establishing or upgrading a Project Management Office with AI capabilities for automation and real-time project tracking. (Includes integrating AI tools into project workflows for status reporting and schedule optimization.)",
			Unit:           "Service",
			DurationMonths: 12,
			Price:          300000.00,
		},
		"2.2": {
			ID:             "2.2",
			Name:           "AI Project Tracker & Risk Prediction Tool",
			Description:    "Deployment of an 'AI Project Manager' solution that uses predictive analytics to forecast project risks and delays. (For example, AI-based dashboards that predict schedule slippages and resource needs, valued in mid-six figures based on past tech deployments.)",
			Unit:           "Service",
			DurationMonths: 4,
			Price:          350000.00,
		},
		"2.3": {
			ID:             "2.3",
			Name:           "AI Portfolio Roadmap Development",
			Description:    "Creating an AI-enhanced portfolio roadmap with project interdependencies and strategic alignment. (Often delivered as a consulting output rather than a separately priced item.)",
			Unit:           "Service",
			DurationMonths: 10,
			Price:          400000.00,
		},
		"3.0": {
			ID:             "3.0",
			Name:           "AI Risk Management & Compliance",
			Unit:           "Service",
			DurationMonths: 6,
			Price:          500000.00,
		},
		"3.1": {
			ID:             "3.1",
			Name:           "AI Maturity & Impact Assessment",
			Description:    "Evaluating the organization's AI maturity level and readiness, and assessing potential impact and risks of AI use cases. (Includes workshops and an AI maturity model assessment.)",
			Unit:           "Service",
			DurationMonths: 2,
			Price:          200000.00,
		},
		"3.2": {
			ID:             "3.2",
			Name:           "AI Risk & Compliance Framework",
			Description:    "Developing tools and processes for AI risk identification, bias mitigation, and compliance monitoring (e.g. TRM - Transformation Risk Manager)",
			Unit:           "Service",
			DurationMonths: 3,
			Price:          300000.00,
		},
		"3.3": {
			ID:             "3.3",
			Name:           "Regulatory Alignment & Audit Preparation",
			Description:    "Ensuring AI initiatives comply with local and international regulations, and preparing documentation for audits or certifications (such as NDMO guidelines or OECD AI principles)",
			Unit:           "Service",
			DurationMonths: 3,
			Price:          250000.00,
		},
		"4.0": {
			ID:             "4.0",
			Name:           "AI Enablement & Implementation",
			Unit:           "Service",
			DurationMonths: 36,
			Price:          3000000.00,
		},
		"4.1": {
			ID:             "4.1",
			Name:           "AI Solution Design & MVP Development",
			Description:    "End-to-end development of a proof-of-concept or MVP (Minimum Viable Product) for an AI solution tailored to the client's use case",
			Unit:           "Solution",
			DurationMonths: 2,
			Price:          725000.00,
		},
		"4.2": {
			ID:             "4.2",
			Name:           "Advanced Analytics & BI Integration",
			Description:    "Implementing AI-powered analytics, business intelligence dashboards, and real-time data processing for decision support",
			Unit:           "Solution",
			DurationMonths: 9,
			Price:          925000.00,
		},
		"4.3": {
			ID:             "4.3",
			Name:           "Custom AI Use Case Development",
			Description:    "Developing industry-specific AI use cases or models (e.g. predictive maintenance, customer service chatbots) and integrating them into business processes",
			Unit:           "Document",
			DurationMonths: 10,
			Price:          600000.00,
		},
		"4.4": {
			ID:             "4.4",
			Name:           "User Interface & Experience Implementation",
			Description:    "Building intuitive, multi-language user interfaces for AI applications, ensuring accessibility (e.g. compliance with WCAG standards).",
			Unit:           "Software",
			DurationMonths: 8,
			Price:          1000000.00,
		},
		"4.5": {
			ID:             "4.5",
			Name:           "Integration & Deployment",
			Description:    "Integration of AI solutions into the client's environment (CRM, ERP, etc.), including testing and deployment on cloud or on-prem infrastructure",
			Unit:           "Software & Hardware",
			DurationMonths: 12,
			Price:          1250000.00,
		},
		"4.6": {
			ID:             "4.6",
			Name:           "Chatbot Development & Automation",
			Description:    "Developing a modular conversational AI assistant (e.g. for customer service or internal support) as a key AI Enablement use case",
			Unit:           "Subscription",
			DurationMonths: 1,
			Price:          10000.00,
		},
		"5.0": {
			ID:             "5.0",
			Name:           "Training & Capacity Building",
			Unit:           "Service",
			DurationMonths: 36,
			Price:          400000.00,
		},
		"5.1": {
			ID:             "5.1",
			Name:           "AI Competency Development Programs",
			Description:    "A series of workshops, 'AI bootcamps,' and hands-on training sessions to build the client team's AI skills",
			Unit:           "Service",
			DurationMonths: 36,
			Price:          250000.00,
		},
		"5.2": {
			ID:             "5.2",
			Name:           "Executive Leadership Workshops",
			Description:    "High-level seminars for leadership on AI strategy, transformation, and change management",
			Unit:           "Employee",
			DurationMonths: 6,
			Price:          25000.00,
		},
		"5.3": {
			ID:             "5.3",
			Name:           "Certification Training (ISO/IEC 42001)",
			Description:    "Focused training to prepare teams for AI management system certification",
			Unit:           "Employee",
			DurationMonths: 1,
			Price:          10000.00,
		},
		"5.4": {
			ID:             "5.4",
			Name:           "Certification Training (ISO 14001)",
			Description:    "Certified training",
			Unit:           "Employee",
			DurationMonths: 1,
			Price:          10000.00,
		},
		"5.5": {
			ID:             "5.5",
			Name:           "Certification Training (ISO 45001)",
			Description:    "Certified training",
			Unit:           "Employee",
			DurationMonths: 1,
			Price:          10000.00,
		},
		"5.6": {
			ID:             "5.6",
			Name:           "Certification Training (ISO 9001)",
			Description:    "Certified training",
			Unit:           "Employee",
			DurationMonths: 1,
			Price:          10000.00,
		},
		"5.7": {
			ID:             "5.7",
			Name:           "Certification Training (ISO 50001)",
			Description:    "Certified training",
			Unit:           "Employee",
			DurationMonths: 1,
			Price:          10000.00,
		},
		"6.0": {
			ID:             "6.0",
			Name:           "Data Management & AI Infrastructure",
			Unit:           "Service",
			DurationMonths: 36,
			Price:          3500000.00,
		},
		"6.1": {
			ID:             "6.1",
			Name:           "AI/Data Architecture Design",
			Description:    "Designing the overall system and data architecture for AI solutions, including databases, data pipelines, and cloud infrastructure",
			Unit:           "Service",
			DurationMonths: 6,
			Price:          700000.00,
		},
		"6.2": {
			ID:             "6.2",
			Name:           "Data Collection & Integration",
			Description:    "Setting up data integration pipelines to gather and unify data from various sources (internal systems or external APIs) for AI use",
			Unit:           "Service",
			DurationMonths: 12,
			Price:          675000.00,
		},
		"6.3": {
			ID:             "6.3",
			Name:           "Secure Data Storage & Cybersecurity",
			Description:    "Implementing secure data lakes/warehouses and applying cybersecurity best practices (encryption, access controls) to protect sensitive data.",
			Unit:           "Software & Hardware",
			DurationMonths: 6,
			Price:          800000.00,
		},
		"6.4": {
			ID:             "6.4",
			Name:           "AI Infrastructure & Cloud Deployment",
			Description:    "Provisioning cloud or on-premise environments for AI model training and deployment, ensuring scalability and compliance with data residency requirements",
			Unit:           "Software & Hardware",
			DurationMonths: 18,
			Price:          700000.00,
		},
		"6.5": {
			ID:             "6.5",
			Name:           "Interoperability & API Integration",
			Description:    "Ensuring the AI systems can interconnect with other enterprise systems and external services",
			Unit:           "Service",
			DurationMonths: 8,
			Price:          700000.00,
		},
		"6.6": {
			ID:             "6.6",
			Name:           "Maintenance & Support Services",
			Description:    "Ongoing technical support, system monitoring, and model maintenance post-implementation",
			Unit:           "Service",
			DurationMonths: 1,
			Price:          650000.00,
		},
	}
}

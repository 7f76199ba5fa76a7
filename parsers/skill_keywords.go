package parsers

// Skill taxonomy and related keyword tables. These are read-only,
// process-wide data; the matching engines live in skills.go, summary.go and
// scoring.go so taxonomy edits never touch control flow.

// Skill categories.
const (
	CategoryProgramming    = "Programming Languages"
	CategoryWeb            = "Web Technologies"
	CategoryDataScience    = "Data Science & Analytics"
	CategoryCloudDevOps    = "Cloud & DevOps"
	CategoryDatabases      = "Database Technologies"
	CategoryMobile         = "Mobile Development"
	CategorySoftSkills     = "Soft Skills"
	CategoryBusinessSkills = "Business Skills"
	CategoryDesignSkills   = "Design Skills"
	CategoryDomainSpecific = "Domain-Specific Skill"
)

var programmingLanguages = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "c", "ruby",
	"php", "swift", "kotlin", "go", "golang", "rust", "scala", "perl", "r",
	"matlab", "bash", "powershell", "sql", "dart", "objective-c", "assembly",
	"fortran", "cobol", "haskell", "erlang", "clojure", "groovy", "lua",
	"julia", "vba", "solidity",
}

var webTechnologies = []string{
	"html", "css", "sass", "less", "bootstrap", "tailwind", "jquery", "react",
	"angular", "vue", "svelte", "next.js", "nuxt.js", "redux", "graphql",
	"rest", "soap", "express", "node.js", "django", "flask", "spring",
	"asp.net", "laravel", "symfony", "ruby on rails", "wordpress", "drupal",
	"magento", "shopify", "websocket", "webrtc", "pwa", "web components",
}

var dataScienceSkills = []string{
	"machine learning", "deep learning", "artificial intelligence",
	"neural networks", "nlp", "natural language processing", "computer vision",
	"data mining", "statistical analysis", "predictive modeling", "regression",
	"classification", "clustering", "feature engineering", "data visualization",
	"big data", "data warehousing", "etl", "pandas", "numpy", "scipy",
	"scikit-learn", "tensorflow", "pytorch", "keras", "opencv", "spacy",
	"nltk", "transformers", "bert", "tableau", "power bi", "matplotlib",
	"seaborn", "plotly", "d3.js", "hadoop", "spark", "hive", "airflow",
	"time series analysis", "a/b testing", "recommendation systems",
}

var cloudDevOpsSkills = []string{
	"aws", "amazon web services", "azure", "microsoft azure", "gcp",
	"google cloud platform", "docker", "kubernetes", "terraform", "ansible",
	"chef", "puppet", "jenkins", "gitlab ci", "github actions", "circleci",
	"ci/cd", "continuous integration", "continuous deployment", "serverless",
	"lambda", "s3", "ec2", "rds", "dynamodb", "bigquery", "cloudfront", "cdn",
	"load balancing", "auto scaling", "high availability", "disaster recovery",
	"monitoring", "prometheus", "grafana", "elk stack", "splunk", "datadog",
	"cloudwatch", "openshift", "istio", "microservices", "containers", "vmware",
}

var databaseTechnologies = []string{
	"mysql", "postgresql", "sql server", "oracle", "mongodb", "cassandra",
	"redis", "elasticsearch", "neo4j", "couchdb", "firebase", "sqlite",
	"mariadb", "hbase", "influxdb", "cockroachdb", "snowflake", "redshift",
	"nosql", "indexing", "query optimization", "database design",
	"data modeling", "normalization", "sharding", "replication",
	"partitioning", "data migration",
}

var mobileDevelopmentSkills = []string{
	"android", "ios", "react native", "flutter", "xamarin", "ionic",
	"cordova", "capacitor", "mobile app development", "responsive design",
	"progressive web apps", "push notifications", "geolocation",
	"mobile analytics", "mobile testing", "mobile security", "mobile payments",
}

var softSkills = []string{
	"communication", "teamwork", "leadership", "problem solving",
	"critical thinking", "time management", "organization", "adaptability",
	"flexibility", "creativity", "innovation", "emotional intelligence",
	"conflict resolution", "negotiation", "presentation skills",
	"public speaking", "writing", "active listening", "customer service",
	"client relations", "mentoring", "coaching", "training", "decision making",
	"strategic thinking", "analytical thinking", "attention to detail",
	"multitasking", "prioritization", "work ethic", "self-motivation",
	"reliability", "accountability", "integrity", "empathy", "patience",
	"resilience", "interpersonal skills",
}

var businessSkills = []string{
	"project management", "agile", "scrum", "kanban", "waterfall", "prince2",
	"pmp", "product management", "business analysis", "requirements gathering",
	"stakeholder management", "risk management", "change management",
	"quality assurance", "six sigma", "lean", "process improvement",
	"strategic planning", "market analysis", "competitive analysis",
	"financial analysis", "budgeting", "forecasting", "sales", "marketing",
	"digital marketing", "content marketing", "social media marketing", "seo",
	"sem", "email marketing", "crm", "erp", "supply chain management",
	"operations management", "human resources", "recruitment",
	"talent acquisition", "performance management", "data entry",
}

var designSkills = []string{
	"ui design", "ux design", "user interface", "user experience",
	"interaction design", "visual design", "graphic design", "web design",
	"wireframing", "prototyping", "mockups", "user research",
	"usability testing", "information architecture", "accessibility",
	"typography", "color theory", "illustration", "animation",
	"motion graphics", "3d modeling", "photoshop", "illustrator", "indesign",
	"sketch", "figma", "invision", "after effects", "blender", "autocad",
	"solidworks",
}

// skillCategories maps every known skill term (lowercase) to its category.
var skillCategories = buildSkillCategories()

func buildSkillCategories() map[string]string {
	out := map[string]string{}
	add := func(terms []string, category string) {
		for _, t := range terms {
			if _, exists := out[t]; !exists {
				out[t] = category
			}
		}
	}
	add(programmingLanguages, CategoryProgramming)
	add(webTechnologies, CategoryWeb)
	add(dataScienceSkills, CategoryDataScience)
	add(cloudDevOpsSkills, CategoryCloudDevOps)
	add(databaseTechnologies, CategoryDatabases)
	add(mobileDevelopmentSkills, CategoryMobile)
	add(softSkills, CategorySoftSkills)
	add(businessSkills, CategoryBusinessSkills)
	add(designSkills, CategoryDesignSkills)
	return out
}

// proficiencyWordOrder is the match priority when a line carries more than
// one level word.
var proficiencyWordOrder = []string{
	"expert", "advanced", "proficient", "experienced", "intermediate",
	"working", "familiar", "basic", "beginner", "novice",
}

// proficiencyScores maps level words found near a skill mention to a
// proficiency value.
var proficiencyScores = map[string]float64{
	"expert":       0.9,
	"advanced":     0.85,
	"proficient":   0.8,
	"experienced":  0.75,
	"intermediate": 0.7,
	"working":      0.6,
	"familiar":     0.5,
	"basic":        0.4,
	"beginner":     0.4,
	"novice":       0.35,
}

// jobTitlesByIndustry groups curated job titles into the industry buckets the
// ATS missing-keyword check understands. Titles outside these four buckets
// simply get no missing-keyword diff.
var jobTitlesByIndustry = map[string][]string{
	"Technology": {
		"software engineer", "software developer", "web developer",
		"frontend developer", "backend developer", "full stack developer",
		"mobile developer", "ios developer", "android developer",
		"devops engineer", "site reliability engineer", "cloud engineer",
		"data scientist", "data engineer", "machine learning engineer",
		"data analyst", "business intelligence analyst",
		"database administrator", "systems administrator", "network engineer",
		"security engineer", "qa engineer", "test engineer",
		"automation engineer", "product manager", "project manager",
		"scrum master", "engineering manager", "technical lead", "tech lead",
		"solutions architect", "enterprise architect", "ui designer",
		"ux designer", "web designer",
	},
	"Business": {
		"business analyst", "management consultant", "financial analyst",
		"accountant", "auditor", "financial advisor", "investment analyst",
		"portfolio manager", "risk analyst", "compliance officer",
		"business development manager", "sales representative",
		"account executive", "sales manager", "marketing specialist",
		"marketing manager", "digital marketing manager", "seo specialist",
		"social media manager", "brand manager", "market research analyst",
		"communications manager", "hr manager", "recruiter",
		"talent acquisition specialist", "operations manager",
		"supply chain manager", "logistics coordinator", "office manager",
		"executive assistant", "customer success manager",
	},
	"Healthcare": {
		"physician", "doctor", "surgeon", "nurse", "registered nurse",
		"nurse practitioner", "physician assistant", "medical assistant",
		"pharmacist", "pharmacy technician", "dentist", "dental hygienist",
		"veterinarian", "physical therapist", "occupational therapist",
		"speech therapist", "radiologist", "medical technologist", "paramedic",
		"medical coder", "healthcare administrator", "clinical director",
		"epidemiologist", "biostatistician", "clinical research associate",
	},
	"Education": {
		"teacher", "professor", "instructor", "tutor", "teaching assistant",
		"research assistant", "principal", "dean", "education administrator",
		"curriculum developer", "instructional designer", "school counselor",
		"academic advisor", "librarian", "special education teacher",
		"esl teacher", "elementary school teacher", "high school teacher",
		"college professor", "lecturer", "education consultant",
	},
}

// industryKeySkills holds each industry's canonical skill list for the ATS
// missing-keyword diff.
var industryKeySkills = map[string][]string{
	"Technology": {
		"python", "java", "javascript", "sql", "git", "aws", "docker", "agile",
		"rest", "ci/cd", "linux", "testing",
	},
	"Business": {
		"project management", "financial analysis", "stakeholder management",
		"budgeting", "crm", "negotiation", "strategic planning", "forecasting",
		"market analysis", "sales",
	},
	"Healthcare": {
		"patient care", "medical terminology", "clinical documentation",
		"hipaa", "electronic health records", "care coordination",
		"medication administration", "quality assurance",
	},
	"Education": {
		"curriculum development", "lesson planning", "classroom management",
		"assessment", "instructional design", "student engagement", "mentoring",
		"educational technology",
	},
}

// jobTitleSuffixes close a "seeking a position as X" phrase.
var jobTitleSuffixes = []string{
	"developer", "engineer", "manager", "analyst", "designer", "architect",
	"consultant", "specialist", "scientist", "administrator", "coordinator",
	"director", "lead", "intern", "assistant", "officer", "technician",
}

// actionVerbs indicate impact in section scoring and mark achievement bullets
// in experience classification.
var actionVerbs = []string{
	"achieved", "improved", "increased", "decreased", "reduced", "delivered",
	"launched", "led", "managed", "built", "created", "developed", "designed",
	"implemented", "optimized", "automated", "streamlined", "generated",
	"saved", "grew", "accelerated", "expanded", "won", "exceeded",
	"transformed", "spearheaded", "drove", "boosted", "established",
}

// resultIndicators mark outcome-bearing experience bullets.
var resultIndicators = []string{
	"resulted in", "leading to", "which led to", "increased", "decreased",
	"improved", "reduced", "saved", "generated", "grew", "boosted",
	"revenue", "cost", "efficiency", "performance", "productivity",
}

// lookupIndustry maps a target job title to its industry bucket, or "" when
// it belongs to none of the known four.
func lookupIndustry(targetJob string) string {
	if targetJob == "" {
		return ""
	}
	lower := toLowerTrim(targetJob)
	for _, industry := range industryOrder {
		for _, title := range jobTitlesByIndustry[industry] {
			if containsWord(lower, title) {
				return industry
			}
		}
	}
	return ""
}

package services

// Word pools for generated demo data. Combinations repeat; uniqueness, where
// it matters, is handled by the seeder itself.

var universityPrefixes = []string{
	"Northern", "Southern", "Eastern", "Western", "Central",
	"Pacific", "Atlantic", "Riverside", "Lakeside", "Highland",
	"Summit", "Valley", "Coastal", "Metropolitan", "Capital",
	"Heritage", "Pioneer", "Liberty", "Union", "Crestwood",
}

var universitySuffixes = []string{
	"University", "State University", "Institute of Technology",
	"Polytechnic", "College", "Technical University",
}

var cities = []string{
	"Springfield", "Riverton", "Oakdale", "Fairview", "Brookhaven",
	"Lakewood", "Milford", "Ashford", "Greenville", "Kingsport",
	"Madison", "Clayton", "Bristol", "Dover", "Salem",
	"Arlington", "Georgetown", "Franklin", "Clinton", "Auburn",
}

var firstNames = []string{
	"Alice", "Bruno", "Carmen", "Diego", "Elena",
	"Felix", "Greta", "Hugo", "Irene", "Javier",
	"Karla", "Lucas", "Marta", "Nora", "Oscar",
	"Paula", "Quentin", "Rosa", "Sergio", "Teresa",
	"Ulises", "Valeria", "Walter", "Ximena", "Yolanda", "Zoe",
}

var lastNames = []string{
	"Anderson", "Becker", "Castillo", "Delgado", "Esposito",
	"Fischer", "Gonzalez", "Herrera", "Ivanov", "Jimenez",
	"Keller", "Lombardi", "Moreno", "Navarro", "Ortega",
	"Pereira", "Quiroga", "Romero", "Suarez", "Torres",
	"Ueda", "Vargas", "Weber", "Yamamoto", "Zambrano",
}

var departments = []string{
	"Computer Science", "Mathematics", "Physics", "Chemistry",
	"Biology", "Economics", "History", "Philosophy",
	"Mechanical Engineering", "Electrical Engineering",
	"Civil Engineering", "Psychology", "Sociology",
	"Political Science", "Literature", "Linguistics",
	"Statistics", "Architecture", "Medicine", "Law",
}

var commentPhrases = []string{
	"Explains difficult topics clearly and patiently.",
	"Lectures are well organized but the exams are brutal.",
	"Always available during office hours, very approachable.",
	"Grading felt arbitrary at times, be ready to argue your case.",
	"Assignments are heavy but you learn a lot by the end.",
	"Reads straight from the slides, bring coffee.",
	"Genuinely cares whether students understand the material.",
	"Fast-paced course, do not fall behind in the first weeks.",
	"Great storyteller, makes even dry material engaging.",
	"Strict on deadlines, generous with feedback.",
	"The labs were the best part of the course.",
	"Expects a lot of independent reading between lectures.",
	"Curve saved the whole class, twice.",
	"Would take another course with this professor without hesitation.",
	"Hard to follow at times, but the notes posted online help.",
	"Participation counts more than the syllabus suggests.",
	"Final project was open ended and actually fun.",
	"Answers questions with more questions. You get used to it.",
	"The midterm covered material we never saw in class.",
	"Fair grader and the workload is manageable.",
}

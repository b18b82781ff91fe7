package scoring

// careerLabels maps the classifier's output index to a career name. The
// order is the label encoding the model was trained with and must never
// be re-sorted.
var careerLabels = [76]string{
	"Accountant",
	"Actor",
	"Architect",
	"Artist",
	"Astronomer",
	"Biologist",
	"Biomedical Engineer",
	"Business Analyst",
	"Chef",
	"Chemist",
	"Civil Engineer",
	"Data Analyst",
	"Data Scientist",
	"Database Administrator",
	"Dentist",
	"Doctor",
	"Economist",
	"Electrical Engineer",
	"Elementary School Teacher",
	"Environmental Scientist",
	"Event Planner",
	"Fashion Designer",
	"Film Director",
	"Financial Advisor",
	"Financial Analyst",
	"Firefighter",
	"Game Developer",
	"Geologist",
	"Graphic Designer",
	"HR Manager",
	"Industrial Engineer",
	"Insurance Agent",
	"Interior Designer",
	"IT Support Specialist",
	"Journalist",
	"Judge",
	"Lawyer",
	"Librarian",
	"Marine Biologist",
	"Marketing Manager",
	"Mechanical Engineer",
	"Musician",
	"Nurse",
	"Nutritionist",
	"Occupational Therapist",
	"Pediatrician",
	"Pharmacist",
	"Photographer",
	"Physical Therapist",
	"Physicist",
	"Pilot",
	"Police Officer",
	"Product Manager",
	"Professor",
	"Project Manager",
	"Psychiatrist",
	"Psychologist",
	"Public Relations Specialist",
	"Real Estate Agent",
	"Research Scientist",
	"Robotics Engineer",
	"Sales Manager",
	"Social Worker",
	"Software Developer",
	"Software Engineer",
	"Speech Therapist",
	"Sports Coach",
	"Statistician",
	"Surgeon",
	"Surveyor",
	"Teacher",
	"Translator",
	"Urban Planner",
	"Veterinarian",
	"Web Developer",
	"Writer",
}

// LabelCount is the width of the score vector the classifier returns.
const LabelCount = len(careerLabels)

// CareerLabel returns the name for a label index.
func CareerLabel(i int) string { return careerLabels[i] }

package services

// englishStopwords is the standard English stopword list (the NLTK corpus
// list), embedded so the extractor has no runtime download step.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't",
	"couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
	"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan",
	"shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren",
	"weren't", "won", "won't", "wouldn", "wouldn't",
}

// customStopwords are job-posting boilerplate terms that carry no signal for
// matching a resume against a description.
var customStopwords = []string{
	"job", "role", "requirement", "requirements", "looking", "good",
	"great", "must", "etc", "knowledge", "strong", "excellent",
	"ability", "applicant", "candidate", "team",
}

// domainKeywords is the curated allow-list of technical and professional
// terms that rank ahead of everything else during keyword extraction.
var domainKeywords = []string{
	"python", "java", "c++", "c#", "c", "go", "golang", "javascript",
	"typescript", "flask", "django", "react", "node", "rest", "api",
	"microservices", "machine", "learning", "deep", "ai", "ml", "sql",
	"nosql", "postgres", "mysql", "mongodb", "redis", "data", "analysis",
	"analytics", "numpy", "pandas", "excel", "tableau", "power", "bi",
	"spark", "hadoop", "cloud", "aws", "azure", "gcp", "docker",
	"kubernetes", "terraform", "linux", "git", "nlp", "transformers",
	"keras", "pytorch", "tensorflow", "communication", "leadership",
	"management", "developer", "development", "engineer", "engineering",
}

func buildWordSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			set[w] = struct{}{}
		}
	}
	return set
}

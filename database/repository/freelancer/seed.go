package freelancerRepo

import "freelanceai/models"

// SeedCatalog returns the built-in freelancer profiles used to bootstrap a
// fresh installation. Ordering matters: it is the "relevant" sort order.
func SeedCatalog() []models.Freelancer {
	return []models.Freelancer{
		{
			ID:             1,
			Name:           "Thomas Laurent",
			Title:          "Expert IA & Machine Learning",
			Rating:         4.9,
			Reviews:        127,
			CompletionRate: 98,
			ResponseTime:   "< 2 heures",
			LastActive:     "Aujourd'hui",
			MemberSince:    "Janvier 2021",
			Description:    "Spécialiste en intelligence artificielle et machine learning avec plus de 8 ans d'expérience. J'aide les entreprises à développer des solutions IA sur-mesure pour optimiser leurs processus et extraire de la valeur de leurs données.",
			Image:          "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?auto=format&fit=crop&w=300&q=80",
			Skills:         []string{"Machine Learning", "Python", "TensorFlow", "NLP", "Computer Vision", "Deep Learning"},
			Price:          95,
			Languages:      []string{"Français", "Anglais", "Espagnol"},
			Education: []models.Education{
				{Degree: "Doctorat en Intelligence Artificielle", Institution: "École Polytechnique", Year: "2018"},
				{Degree: "Master en Data Science", Institution: "École Normale Supérieure", Year: "2015"},
			},
			Certifications: []string{
				"Google Professional ML Engineer",
				"AWS Certified Machine Learning Specialty",
				"NVIDIA Deep Learning Institute",
			},
			Portfolio: []models.PortfolioItem{
				{Title: "Système de recommandation e-commerce", Description: "Développement d'un algorithme de recommandation personnalisé pour une plateforme e-commerce majeure, augmentant les ventes de 24%.", Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&q=80"},
				{Title: "Chatbot IA pour service client", Description: "Conception et implémentation d'un chatbot intelligent capable de résoudre 78% des requêtes clients sans intervention humaine.", Image: "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?auto=format&fit=crop&w=800&q=80"},
				{Title: "Système de détection de fraude", Description: "Développement d'un modèle de ML pour détecter les transactions frauduleuses en temps réel pour une institution financière.", Image: "https://images.unsplash.com/photo-1563986768494-4dee2763ff3f?auto=format&fit=crop&w=800&q=80"},
			},
			ReviewsList: []models.Review{
				{ID: 1, User: "Sophie Martin", Rating: 5, Date: "12 juin 2023", Comment: "Thomas a été exceptionnel. Il a parfaitement compris nos besoins et a livré un modèle d'IA qui dépasse nos attentes. Communication claire et professionnelle tout au long du projet."},
				{ID: 2, User: "Alexandre Dubois", Rating: 5, Date: "23 avril 2023", Comment: "Un expert dans son domaine. Thomas a réussi à résoudre des problèmes complexes que d'autres consultants n'avaient pas pu résoudre. Je le recommande vivement pour tout projet d'IA avancé."},
				{ID: 3, User: "Marie Lefebvre", Rating: 4, Date: "7 mars 2023", Comment: "Excellent travail sur notre projet de NLP. Thomas est très compétent et pédagogue. Seul petit bémol sur les délais qui ont été un peu plus longs que prévu, mais le résultat final en valait la peine."},
			},
			Services: []models.ServiceOffer{
				{ID: 1, Title: "Développement de modèles ML personnalisés", Description: "Conception et développement de modèles de machine learning adaptés à vos besoins spécifiques.", Price: 2500, DeliveryTime: "2-3 semaines"},
				{ID: 2, Title: "Implémentation de chatbots IA", Description: "Création de chatbots intelligents capables d'interagir naturellement avec vos clients.", Price: 1800, DeliveryTime: "1-2 semaines"},
				{ID: 3, Title: "Consultation et formation IA", Description: "Sessions de conseil et formation pour vos équipes internes sur l'IA et le ML.", Price: 950, DeliveryTime: "Sur mesure"},
			},
		},
		{
			ID:             2,
			Name:           "Sophie Dubois",
			Title:          "Développeuse Blockchain Senior",
			Rating:         4.8,
			Reviews:        94,
			CompletionRate: 97,
			ResponseTime:   "< 3 heures",
			LastActive:     "Hier",
			MemberSince:    "Mars 2020",
			Description:    "Développeuse blockchain expérimentée, spécialisée dans Ethereum et les smart contracts. Je crée des solutions DeFi sécurisées et évolutives pour les startups et entreprises.",
			Image:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=300&q=80",
			Skills:         []string{"Ethereum", "Smart Contracts", "Solidity", "Web3.js", "DeFi", "NFT"},
			Price:          110,
			Languages:      []string{"Français", "Anglais"},
			Education: []models.Education{
				{Degree: "Master en Cryptographie", Institution: "EPFL Lausanne", Year: "2019"},
			},
			Certifications: []string{
				"Certified Blockchain Developer",
				"Ethereum Developer Certification",
				"Consensys Academy Graduate",
			},
			Portfolio: []models.PortfolioItem{
				{Title: "Plateforme DeFi de prêts décentralisés", Description: "Conception d'une plateforme DeFi permettant des prêts peer-to-peer sans intermédiaires.", Image: "https://images.unsplash.com/photo-1639322537228-f710d846310a?auto=format&fit=crop&w=800&q=80"},
				{Title: "Collection NFT pour marque de luxe", Description: "Développement des smart contracts pour une collection NFT d'une marque de luxe française.", Image: "https://images.unsplash.com/photo-1620321023374-d1a68fbc720d?auto=format&fit=crop&w=800&q=80"},
			},
			ReviewsList: []models.Review{
				{ID: 1, User: "Pierre Moreau", Rating: 5, Date: "2 mai 2023", Comment: "Sophie a développé notre smart contract avec une expertise remarquable. Le code est propre, bien documenté et a passé l'audit de sécurité sans problèmes."},
				{ID: 2, User: "Julien Robert", Rating: 4, Date: "14 mars 2023", Comment: "Excellente développeuse blockchain. Sophie comprend parfaitement les enjeux techniques et business des projets Web3."},
			},
			Services: []models.ServiceOffer{
				{ID: 1, Title: "Développement de smart contracts", Description: "Création de smart contracts sécurisés sur Ethereum, Binance Smart Chain ou Solana.", Price: 3000, DeliveryTime: "2-3 semaines"},
				{ID: 2, Title: "Audit de sécurité blockchain", Description: "Audit complet de vos smart contracts pour identifier et corriger les vulnérabilités.", Price: 2500, DeliveryTime: "1 semaine"},
			},
		},
		{
			ID:             3,
			Name:           "Alexandre Martin",
			Title:          "Consultant Crypto & Finance",
			Rating:         4.7,
			Reviews:        78,
			CompletionRate: 95,
			ResponseTime:   "< 5 heures",
			LastActive:     "Il y a 2 jours",
			MemberSince:    "Juin 2021",
			Description:    "Consultant spécialisé dans la crypto-finance et les investissements blockchain. J'accompagne startups et investisseurs dans leurs stratégies d'investissement et de tokenisation.",
			Image:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=300&q=80",
			Skills:         []string{"DeFi", "Trading", "NFT", "ICO", "Tokenisation", "Finance"},
			Price:          85,
			Languages:      []string{"Français", "Anglais", "Allemand"},
			Education: []models.Education{
				{Degree: "MBA Finance", Institution: "HEC Paris", Year: "2017"},
			},
			Certifications: []string{
				"Certified Financial Analyst (CFA)",
				"Certified Cryptocurrency Expert",
			},
			Portfolio: []models.PortfolioItem{
				{Title: "Stratégie d'investissement DeFi", Description: "Élaboration d'une stratégie DeFi pour un family office, générant +32% de rendement annuel.", Image: "https://images.unsplash.com/photo-1621761191319-c6fb62004040?auto=format&fit=crop&w=800&q=80"},
			},
			ReviewsList: []models.Review{
				{ID: 1, User: "Claire Dupont", Rating: 5, Date: "28 avril 2023", Comment: "Alexandre nous a fourni des conseils stratégiques précieux pour notre projet de tokenisation. Sa connaissance du marché crypto est impressionnante."},
			},
			Services: []models.ServiceOffer{
				{ID: 1, Title: "Consultation stratégique crypto", Description: "Conseil stratégique pour vos investissements et projets dans l'écosystème crypto.", Price: 1500, DeliveryTime: "1 semaine"},
			},
		},
		{
			ID:             4,
			Name:           "Elise Bernard",
			Title:          "Architecte Solutions PME",
			Rating:         4.9,
			Reviews:        112,
			CompletionRate: 99,
			ResponseTime:   "< 1 heure",
			LastActive:     "Aujourd'hui",
			MemberSince:    "Septembre 2019",
			Description:    "Spécialiste en solutions digitales pour PME, j'accompagne les entreprises dans leur transformation numérique avec des outils adaptés à leurs besoins et budget.",
			Image:          "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=300&q=80",
			Skills:         []string{"CRM", "ERP", "Cloud Solutions", "Digital Transformation", "Process Optimization"},
			Price:          90,
			Languages:      []string{"Français", "Anglais"},
			Education: []models.Education{
				{Degree: "Master en Systèmes d'Information", Institution: "EM Lyon", Year: "2016"},
			},
			Certifications: []string{
				"Salesforce Certified Consultant",
				"AWS Solutions Architect",
				"Microsoft Certified: Azure Solutions",
			},
			Portfolio: []models.PortfolioItem{
				{Title: "Transformation digitale PME industrielle", Description: "Implémentation d'une solution ERP complète pour une PME industrielle, réduisant les coûts opérationnels de 22%.", Image: "https://images.unsplash.com/photo-1664575196044-195f135295df?auto=format&fit=crop&w=800&q=80"},
			},
			ReviewsList: []models.Review{
				{ID: 1, User: "Jean Leroy", Rating: 5, Date: "15 mai 2023", Comment: "Elise a complètement transformé notre approche digitale. Sa connaissance des besoins spécifiques des PME est inestimable. Je recommande sans hésitation."},
			},
			Services: []models.ServiceOffer{
				{ID: 1, Title: "Audit digital et stratégie", Description: "Analyse complète de votre infrastructure digitale et proposition d'une stratégie d'optimisation.", Price: 1200, DeliveryTime: "1-2 semaines"},
			},
		},
	}
}

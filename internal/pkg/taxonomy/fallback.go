package taxonomy

// fallbackTable returns the built-in caste grouping used whenever the remote
// sheet is unavailable or fails the corruption check. The NILL sentinel marks
// groups without named sub-castes; it is a real selectable option, not an
// absence marker.
func fallbackTable() Table {
	return Table{
		"ABLAKAROR":     {SubCasteNone},
		"ADIDRAVIDAR":   {".PALLAR", "BARBAR", "KUAVAR", "KURAVAR", "MARUTHAVARI", "MURUTHUAR", "PADAIYACHI", "PANDITAR", "PARAYAR"},
		"ACHARY":        {SubCasteNone},
		"AGAMUDIYAR":    {SubCasteNone},
		"AMBALAAR":      {"MOOPANAAR"},
		"ARUNDUDHI":     {SubCasteNone},
		"ARUNTHATHIYAR": {"PADAIYACHI", "SAKKELIAR"},
		"AYYAR":         {"TENKALAI"},
		"BANDARAM":      {"ANDI"},
		"BANNIYAR":      {"PADAIYACHI"},
		"BRAHMIN":       {"AADISAIVER", "AYAN", "AYYANGAR", "IYYAR"},
		"CHETTIYAR":     {"THELUGU", "THOLUVA", "VANIBA", "VANIYAR", "VELLACHETTIYAR"},
		"DULUVAR":       {"VELLALAR"},
		"GOUNDER":       {SubCasteNone},
		"GRAMANI":       {SubCasteNone},
		"IYYAR":         {"DASINGAR", "GURKAL", "KURUKAL", "PRAGASARANAM", SubCasteNone},
		"KARUNEGAR":     {SubCasteNone},
		"KONAR":         {"VELLALAR", "YADAV", "YADAVAR", SubCasteNone},
		"MUTHIRIAR":     {"AMBALAM", "SANGUNTHAN"},
		"NADAR":         {"GRAMANI", "HINDU", "HINDUNADAR", "KAMRAJ", "MARAMERINADAR", "NADAR", "PANANARAYAN", "R.C.NADAR", "SAANAR"},
		"NAIDU":         {"CHERULAI", "CHETTYNAIDU", "GAVAR", "JANGAM", "KAMMAVAR", "KAVARA", "PALIJANAIDU", "SANARNAIDU", "VADUGAN", "VALAYAR"},
		"NAIKAR":        {SubCasteNone},
		"NAVITHAR":      {"BARBAR"},
		"PANDARAM":      {"ANDI"},
		"PANDITHAR":     {"BARBAR", "MARUTHAVARI"},
		"PILLAI":        {"KAGATHA", "KARKALA", "NAIR", "PANIKKAR", "SAIVA", "SOLEYAVELALOR", "SOLIAR", "SOLIYA", "THEVA", "THOLUVA", "THOLUVAVELLALAR", "THULLAM", "VEERAGUL", "VEERAKODAI", "VEERAVELLAR", "VELLALAR", "VERAGUDIVELLALAR"},
		"RAWHAR":        {SubCasteNone},
		"REDDIYAR":      {SubCasteNone},
		"REDDY":         {SubCasteNone},
		"SERULAI":       {"AGAMUDAIYAR"},
		"SETIYAR":       {"VANIBA"},
		"SHAWRASTRA":    {SubCasteNone},
		"SOLEYA":        {"VELLALAR"},
		"VALLALAR":      {"GOUNDAR", "GURAVEL", "PILLAI"},
		"VANAR":         {SubCasteNone},
		"VANIYAR":       {"CHADIYAR", "DHOBI", "DOBI", "GOUNDAR", "KARKATHAVELLALAR", "KOUNDA", "NAIKAR", "NNAYAKKAR"},
		"VELLALAR":      {"ESAI", "GOUNDAR", "KARAKADU", "KARKATHAPILLAI", "KARKATHAVELALAR", "KURUMBAR", "PILLAI", "SAIVA", "SOLEYA", "THOLUVAVELLALAR", "VEERAKODAI"},
		"VISHWAKARMA":   {"ACHARY", "ASARI", "NADAR"},
		"YADAVAR":       {"GANAR", "GONAR", "KONAR", "YADAVAR"},
		"MUSLIM":        {"LABBAI", "LEPPAI", "RABBAN", "RAVUTHUR", "SYED"},
	}
}

package iban

// swiftRegistry is the built-in country table, following the SWIFT IBAN registry.
// Countries whose BBAN contains free alphanumeric segments tolerate lowercase there.
var swiftRegistry = []CountryDefinition{
	{Code: "AD", Name: "Andorra", Length: 24, BBANFormat: "4!n4!n12!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "AE", Name: "United Arab Emirates", Length: 23, BBANFormat: "3!n16!n", Bank: Span{0, 3}},
	{Code: "AL", Name: "Albania", Length: 28, BBANFormat: "8!n16!c", AllowsLowerCase: true, Bank: Span{0, 3}, Branch: Span{3, 4}},
	{Code: "AT", Name: "Austria", Length: 20, BBANFormat: "5!n11!n", SEPA: true, Bank: Span{0, 5}},
	{Code: "AZ", Name: "Azerbaijan", Length: 28, BBANFormat: "4!a20!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "BA", Name: "Bosnia and Herzegovina", Length: 20, BBANFormat: "3!n3!n8!n2!n", Bank: Span{0, 3}, Branch: Span{3, 3}},
	{Code: "BE", Name: "Belgium", Length: 16, BBANFormat: "3!n7!n2!n", SEPA: true, Bank: Span{0, 3}},
	{Code: "BG", Name: "Bulgaria", Length: 22, BBANFormat: "4!a4!n2!n8!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "BH", Name: "Bahrain", Length: 22, BBANFormat: "4!a14!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "BR", Name: "Brazil", Length: 29, BBANFormat: "8!n5!n10!n1!a1!c", AllowsLowerCase: true, Bank: Span{0, 8}, Branch: Span{8, 5}},
	{Code: "BY", Name: "Belarus", Length: 28, BBANFormat: "4!c4!n16!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "CH", Name: "Switzerland", Length: 21, BBANFormat: "5!n12!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 5}},
	{Code: "CR", Name: "Costa Rica", Length: 22, BBANFormat: "4!n14!n", Bank: Span{0, 4}},
	{Code: "CY", Name: "Cyprus", Length: 28, BBANFormat: "3!n5!n16!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 3}, Branch: Span{3, 5}},
	{Code: "CZ", Name: "Czechia", Length: 24, BBANFormat: "4!n6!n10!n", SEPA: true, Bank: Span{0, 4}},
	{Code: "DE", Name: "Germany", Length: 22, BBANFormat: "8!n10!n", SEPA: true, Bank: Span{0, 8}},
	{Code: "DK", Name: "Denmark", Length: 18, BBANFormat: "4!n9!n1!n", SEPA: true, Bank: Span{0, 4}},
	{Code: "DO", Name: "Dominican Republic", Length: 28, BBANFormat: "4!c20!n", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "EE", Name: "Estonia", Length: 20, BBANFormat: "2!n2!n11!n1!n", SEPA: true, Bank: Span{0, 2}},
	{Code: "EG", Name: "Egypt", Length: 29, BBANFormat: "4!n4!n17!n", Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "ES", Name: "Spain", Length: 24, BBANFormat: "4!n4!n1!n1!n10!n", SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "FI", Name: "Finland", Length: 18, BBANFormat: "3!n11!n", SEPA: true, Bank: Span{0, 3}},
	{Code: "FO", Name: "Faroe Islands", Length: 18, BBANFormat: "4!n9!n1!n", Bank: Span{0, 4}},
	{Code: "FR", Name: "France", Length: 27, BBANFormat: "5!n5!n11!c2!n", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 5}, Branch: Span{5, 5}},
	{Code: "GB", Name: "United Kingdom", Length: 22, BBANFormat: "4!a6!n8!n", SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 6}},
	{Code: "GE", Name: "Georgia", Length: 22, BBANFormat: "2!a16!n", Bank: Span{0, 2}},
	{Code: "GI", Name: "Gibraltar", Length: 23, BBANFormat: "4!a15!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 4}},
	{Code: "GL", Name: "Greenland", Length: 18, BBANFormat: "4!n9!n1!n", Bank: Span{0, 4}},
	{Code: "GR", Name: "Greece", Length: 27, BBANFormat: "3!n4!n16!c", AllowsLowerCase: true, Bank: Span{0, 3}, Branch: Span{3, 4}},
	{Code: "GT", Name: "Guatemala", Length: 28, BBANFormat: "4!c20!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "HR", Name: "Croatia", Length: 21, BBANFormat: "7!n10!n", SEPA: true, Bank: Span{0, 7}},
	{Code: "HU", Name: "Hungary", Length: 28, BBANFormat: "3!n4!n1!n15!n1!n", SEPA: true, Bank: Span{0, 3}, Branch: Span{3, 4}},
	{Code: "IE", Name: "Ireland", Length: 22, BBANFormat: "4!a6!n8!n", SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 6}},
	{Code: "IL", Name: "Israel", Length: 23, BBANFormat: "3!n3!n13!n", Bank: Span{0, 3}, Branch: Span{3, 3}},
	{Code: "IQ", Name: "Iraq", Length: 23, BBANFormat: "4!a3!n12!n", Bank: Span{0, 4}, Branch: Span{4, 3}},
	{Code: "IS", Name: "Iceland", Length: 26, BBANFormat: "4!n2!n6!n10!n", SEPA: true, Bank: Span{0, 2}, Branch: Span{2, 2}},
	{Code: "IT", Name: "Italy", Length: 27, BBANFormat: "1!a5!n5!n12!c", AllowsLowerCase: true, SEPA: true, Bank: Span{1, 5}, Branch: Span{6, 5}},
	{Code: "JO", Name: "Jordan", Length: 30, BBANFormat: "4!a4!n18!c", AllowsLowerCase: true, Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "KW", Name: "Kuwait", Length: 30, BBANFormat: "4!a22!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "KZ", Name: "Kazakhstan", Length: 20, BBANFormat: "3!n13!c", AllowsLowerCase: true, Bank: Span{0, 3}},
	{Code: "LB", Name: "Lebanon", Length: 28, BBANFormat: "4!n20!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "LC", Name: "Saint Lucia", Length: 32, BBANFormat: "4!a24!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "LI", Name: "Liechtenstein", Length: 21, BBANFormat: "5!n12!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 5}},
	{Code: "LT", Name: "Lithuania", Length: 20, BBANFormat: "5!n11!n", SEPA: true, Bank: Span{0, 5}},
	{Code: "LU", Name: "Luxembourg", Length: 20, BBANFormat: "3!n13!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 3}},
	{Code: "LV", Name: "Latvia", Length: 21, BBANFormat: "4!a13!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 4}},
	{Code: "LY", Name: "Libya", Length: 25, BBANFormat: "3!n3!n15!n", Bank: Span{0, 3}, Branch: Span{3, 3}},
	{Code: "MC", Name: "Monaco", Length: 27, BBANFormat: "5!n5!n11!c2!n", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 5}, Branch: Span{5, 5}},
	{Code: "MD", Name: "Moldova", Length: 24, BBANFormat: "2!c18!c", AllowsLowerCase: true, Bank: Span{0, 2}},
	{Code: "ME", Name: "Montenegro", Length: 22, BBANFormat: "3!n13!n2!n", Bank: Span{0, 3}},
	{Code: "MK", Name: "North Macedonia", Length: 19, BBANFormat: "3!n10!c2!n", AllowsLowerCase: true, Bank: Span{0, 3}},
	{Code: "MR", Name: "Mauritania", Length: 27, BBANFormat: "5!n5!n11!n2!n", Bank: Span{0, 5}, Branch: Span{5, 5}},
	{Code: "MT", Name: "Malta", Length: 31, BBANFormat: "4!a5!n18!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 5}},
	{Code: "MU", Name: "Mauritius", Length: 30, BBANFormat: "4!a2!n2!n12!n3!n3!a", Bank: Span{0, 6}, Branch: Span{6, 2}},
	{Code: "NL", Name: "Netherlands", Length: 18, BBANFormat: "4!a10!n", SEPA: true, Bank: Span{0, 4}},
	{Code: "NO", Name: "Norway", Length: 15, BBANFormat: "4!n6!n1!n", SEPA: true, Bank: Span{0, 4}},
	{Code: "PK", Name: "Pakistan", Length: 24, BBANFormat: "4!a16!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "PL", Name: "Poland", Length: 28, BBANFormat: "8!n16!n", SEPA: true, Bank: Span{0, 8}},
	{Code: "PS", Name: "Palestine", Length: 29, BBANFormat: "4!a21!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "PT", Name: "Portugal", Length: 25, BBANFormat: "4!n4!n11!n2!n", SEPA: true, Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "QA", Name: "Qatar", Length: 29, BBANFormat: "4!a21!c", AllowsLowerCase: true, Bank: Span{0, 4}},
	{Code: "RO", Name: "Romania", Length: 24, BBANFormat: "4!a16!c", AllowsLowerCase: true, SEPA: true, Bank: Span{0, 4}},
	{Code: "RS", Name: "Serbia", Length: 22, BBANFormat: "3!n13!n2!n", Bank: Span{0, 3}},
	{Code: "SA", Name: "Saudi Arabia", Length: 24, BBANFormat: "2!n18!c", AllowsLowerCase: true, Bank: Span{0, 2}},
	{Code: "SC", Name: "Seychelles", Length: 31, BBANFormat: "4!a2!n2!n16!n3!a", Bank: Span{0, 6}, Branch: Span{6, 2}},
	{Code: "SD", Name: "Sudan", Length: 18, BBANFormat: "2!n12!n", Bank: Span{0, 2}},
	{Code: "SE", Name: "Sweden", Length: 24, BBANFormat: "3!n16!n1!n", SEPA: true, Bank: Span{0, 3}},
	{Code: "SI", Name: "Slovenia", Length: 19, BBANFormat: "5!n8!n2!n", SEPA: true, Bank: Span{0, 5}},
	{Code: "SK", Name: "Slovakia", Length: 24, BBANFormat: "4!n6!n10!n", SEPA: true, Bank: Span{0, 4}},
	{Code: "SM", Name: "San Marino", Length: 27, BBANFormat: "1!a5!n5!n12!c", AllowsLowerCase: true, SEPA: true, Bank: Span{1, 5}, Branch: Span{6, 5}},
	{Code: "ST", Name: "Sao Tome and Principe", Length: 25, BBANFormat: "4!n4!n11!n2!n", Bank: Span{0, 4}, Branch: Span{4, 4}},
	{Code: "SV", Name: "El Salvador", Length: 28, BBANFormat: "4!a20!n", Bank: Span{0, 4}},
	{Code: "TL", Name: "Timor-Leste", Length: 23, BBANFormat: "3!n14!n2!n", Bank: Span{0, 3}},
	{Code: "TN", Name: "Tunisia", Length: 24, BBANFormat: "2!n3!n13!n2!n", Bank: Span{0, 2}, Branch: Span{2, 3}},
	{Code: "TR", Name: "Turkey", Length: 26, BBANFormat: "5!n1!n16!c", AllowsLowerCase: true, Bank: Span{0, 5}},
	{Code: "UA", Name: "Ukraine", Length: 29, BBANFormat: "6!n19!c", AllowsLowerCase: true, Bank: Span{0, 6}},
	{Code: "VA", Name: "Vatican City State", Length: 22, BBANFormat: "3!n15!n", SEPA: true, Bank: Span{0, 3}},
	{Code: "VG", Name: "Virgin Islands, British", Length: 24, BBANFormat: "4!a16!n", Bank: Span{0, 4}},
	{Code: "XK", Name: "Kosovo", Length: 20, BBANFormat: "4!n10!n2!n", Bank: Span{0, 2}, Branch: Span{2, 2}},
}

package registry

import (
	"fmt"
	"time"

	"currency-registry/domain"
	"currency-registry/shared"
)

var (
	d0  = domain.MustFixed(0)
	d2  = domain.MustFixed(2)
	d3  = domain.MustFixed(3)
	d4  = domain.MustFixed(4)
	na  = domain.NotApplicable
	z07 = domain.FifthSubunit
)

type seedRow struct {
	code    string
	numeric string
	digits  domain.Digits
	name    string
	symbol  string
	from    string
	to      string
}

// isoCurrent is the list of active ISO-4217 codes.
var isoCurrent = []seedRow{
	{"AED", "784", d2, "United Arab Emirates dirham", "د.إ", "", ""},
	{"AFN", "971", d2, "Afghan afghani", "؋", "", ""},
	{"ALL", "008", d2, "Albanian lek", "Lek", "", ""},
	{"AMD", "051", d2, "Armenian dram", "֏", "", ""},
	{"AOA", "973", d2, "Angolan kwanza", "Kz", "", ""},
	{"ARS", "032", d2, "Argentine peso", "$", "", ""},
	{"AUD", "036", d2, "Australian dollar", "$", "", ""},
	{"AWG", "533", d2, "Aruban florin", "ƒ", "", ""},
	{"AZN", "944", d2, "Azerbaijani manat", "₼", "2006-01-01", ""},
	{"BAM", "977", d2, "Bosnia and Herzegovina convertible mark", "KM", "", ""},
	{"BBD", "052", d2, "Barbados dollar", "$", "", ""},
	{"BDT", "050", d2, "Bangladeshi taka", "৳", "", ""},
	{"BHD", "048", d3, "Bahraini dinar", "BD", "", ""},
	{"BIF", "108", d0, "Burundian franc", "FBu", "", ""},
	{"BMD", "060", d2, "Bermudian dollar", "$", "", ""},
	{"BND", "096", d2, "Brunei dollar", "$", "", ""},
	{"BOB", "068", d2, "Boliviano", "Bs.", "", ""},
	{"BOV", "984", d2, "Bolivian Mvdol (funds code)", "", "", ""},
	{"BRL", "986", d2, "Brazilian real", "R$", "", ""},
	{"BSD", "044", d2, "Bahamian dollar", "$", "", ""},
	{"BTN", "064", d2, "Bhutanese ngultrum", "Nu.", "", ""},
	{"BWP", "072", d2, "Botswana pula", "P", "", ""},
	{"BYN", "933", d2, "Belarusian ruble", "Br", "2016-07-01", ""},
	{"BZD", "084", d2, "Belize dollar", "BZ$", "", ""},
	{"CAD", "124", d2, "Canadian dollar", "$", "", ""},
	{"CDF", "976", d2, "Congolese franc", "FC", "", ""},
	{"CHE", "947", d2, "WIR euro (complementary currency)", "€", "", ""},
	{"CHF", "756", d2, "Swiss franc", "fr.", "", ""},
	{"CHW", "948", d2, "WIR franc (complementary currency)", "fr.", "", ""},
	{"CLF", "990", d4, "Unidad de Fomento (funds code)", "UF", "", ""},
	{"CLP", "152", d0, "Chilean peso", "$", "", ""},
	{"CNY", "156", d2, "Chinese yuan", "¥", "", ""},
	{"COP", "170", d2, "Colombian peso", "$", "", ""},
	{"COU", "970", d2, "Unidad de Valor Real", "", "", ""},
	{"CRC", "188", d2, "Costa Rican colon", "₡", "", ""},
	{"CUC", "931", d2, "Cuban convertible peso", "CUC$", "", ""},
	{"CUP", "192", d2, "Cuban peso", "$MN", "", ""},
	{"CVE", "132", d2, "Cape Verde escudo", "$", "", ""},
	{"CZK", "203", d2, "Czech koruna", "Kč", "", ""},
	{"DJF", "262", d0, "Djiboutian franc", "Fdj", "", ""},
	{"DKK", "208", d2, "Danish krone", "kr.", "", ""},
	{"DOP", "214", d2, "Dominican peso", "RD$", "", ""},
	{"DZD", "012", d2, "Algerian dinar", "DA", "", ""},
	{"EGP", "818", d2, "Egyptian pound", "LE", "", ""},
	{"ERN", "232", d2, "Eritrean nakfa", "ERN", "", ""},
	{"ETB", "230", d2, "Ethiopian birr", "Br", "", ""},
	{"EUR", "978", d2, "Euro", "€", "", ""},
	{"FJD", "242", d2, "Fiji dollar", "$", "", ""},
	{"FKP", "238", d2, "Falkland Islands pound", "£", "", ""},
	{"GBP", "826", d2, "Pound sterling", "£", "", ""},
	{"GEL", "981", d2, "Georgian lari", "₾", "", ""},
	{"GHS", "936", d2, "Ghanaian cedi", "GH¢", "2007-07-01", ""},
	{"GIP", "292", d2, "Gibraltar pound", "£", "", ""},
	{"GMD", "270", d2, "Gambian dalasi", "D", "", ""},
	{"GNF", "324", d0, "Guinean franc", "FG", "", ""},
	{"GTQ", "320", d2, "Guatemalan quetzal", "Q", "", ""},
	{"GYD", "328", d2, "Guyanese dollar", "$", "", ""},
	{"HKD", "344", d2, "Hong Kong dollar", "HK$", "", ""},
	{"HNL", "340", d2, "Honduran lempira", "L", "", ""},
	{"HTG", "332", d2, "Haitian gourde", "G", "", ""},
	{"HUF", "348", d2, "Hungarian forint", "Ft", "", ""},
	{"IDR", "360", d2, "Indonesian rupiah", "Rp", "", ""},
	{"ILS", "376", d2, "Israeli new shekel", "₪", "", ""},
	{"INR", "356", d2, "Indian rupee", "₹", "", ""},
	{"IQD", "368", d3, "Iraqi dinar", "IQD", "", ""},
	{"IRR", "364", d2, "Iranian rial", "﷼", "", ""},
	{"ISK", "352", d0, "Icelandic króna", "kr", "", ""},
	{"JMD", "388", d2, "Jamaican dollar", "J$", "", ""},
	{"JOD", "400", d3, "Jordanian dinar", "JD", "", ""},
	{"JPY", "392", d0, "Japanese yen", "¥", "", ""},
	{"KES", "404", d2, "Kenyan shilling", "KSh", "", ""},
	{"KGS", "417", d2, "Kyrgyzstani som", "сом", "", ""},
	{"KHR", "116", d2, "Cambodian riel", "៛", "", ""},
	{"KMF", "174", d0, "Comoro franc", "CF", "", ""},
	{"KPW", "408", d2, "North Korean won", "₩", "", ""},
	{"KRW", "410", d0, "South Korean won", "₩", "", ""},
	{"KWD", "414", d3, "Kuwaiti dinar", "KD", "", ""},
	{"KYD", "136", d2, "Cayman Islands dollar", "$", "", ""},
	{"KZT", "398", d2, "Kazakhstani tenge", "₸", "", ""},
	{"LAK", "418", d2, "Lao kip", "₭", "", ""},
	{"LBP", "422", d2, "Lebanese pound", "LL", "", ""},
	{"LKR", "144", d2, "Sri Lankan rupee", "Rs", "", ""},
	{"LRD", "430", d2, "Liberian dollar", "$", "", ""},
	{"LSL", "426", d2, "Lesotho loti", "L", "", ""},
	{"LYD", "434", d3, "Libyan dinar", "LD", "", ""},
	{"MAD", "504", d2, "Moroccan dirham", "MAD", "", ""},
	{"MDL", "498", d2, "Moldovan leu", "L", "", ""},
	{"MGA", "969", z07, "Malagasy ariary", "Ar", "2005-01-01", ""},
	{"MKD", "807", d2, "Macedonian denar", "ден", "", ""},
	{"MMK", "104", d2, "Myanmar kyat", "K", "", ""},
	{"MNT", "496", d2, "Mongolian tögrög", "₮", "", ""},
	{"MOP", "446", d2, "Macanese pataca", "MOP$", "", ""},
	{"MRU", "929", z07, "Mauritanian ouguiya", "UM", "2018-01-01", ""},
	{"MUR", "480", d2, "Mauritian rupee", "Rs", "", ""},
	{"MVR", "462", d2, "Maldivian rufiyaa", "Rf.", "", ""},
	{"MWK", "454", d2, "Malawian kwacha", "MK", "", ""},
	{"MXN", "484", d2, "Mexican peso", "$", "", ""},
	{"MXV", "979", d2, "Mexican Unidad de Inversion (funds code)", "", "", ""},
	{"MYR", "458", d2, "Malaysian ringgit", "RM", "", ""},
	{"MZN", "943", d2, "Mozambican metical", "MTn", "2006-07-01", ""},
	{"NAD", "516", d2, "Namibian dollar", "$", "", ""},
	{"NGN", "566", d2, "Nigerian naira", "₦", "", ""},
	{"NIO", "558", d2, "Nicaraguan córdoba", "C$", "", ""},
	{"NOK", "578", d2, "Norwegian krone", "kr", "", ""},
	{"NPR", "524", d2, "Nepalese rupee", "Rs", "", ""},
	{"NZD", "554", d2, "New Zealand dollar", "$", "", ""},
	{"OMR", "512", d3, "Omani rial", "﷼", "", ""},
	{"PAB", "590", d2, "Panamanian balboa", "B/.", "", ""},
	{"PEN", "604", d2, "Peruvian sol", "S/.", "", ""},
	{"PGK", "598", d2, "Papua New Guinean kina", "K", "", ""},
	{"PHP", "608", d2, "Philippine peso", "₱", "", ""},
	{"PKR", "586", d2, "Pakistani rupee", "Rs", "", ""},
	{"PLN", "985", d2, "Polish złoty", "zł", "", ""},
	{"PYG", "600", d0, "Paraguayan guaraní", "₲", "", ""},
	{"QAR", "634", d2, "Qatari riyal", "QR", "", ""},
	{"RON", "946", d2, "Romanian leu", "lei", "2005-07-01", ""},
	{"RSD", "941", d2, "Serbian dinar", "Дин.", "2006-10-25", ""},
	{"RUB", "643", d2, "Russian ruble", "₽", "", ""},
	{"RWF", "646", d0, "Rwandan franc", "RFw", "", ""},
	{"SAR", "682", d2, "Saudi riyal", "SR", "", ""},
	{"SBD", "090", d2, "Solomon Islands dollar", "SI$", "", ""},
	{"SCR", "690", d2, "Seychelles rupee", "SR", "", ""},
	{"SDG", "938", d2, "Sudanese pound", "£", "2007-07-01", ""},
	{"SEK", "752", d2, "Swedish krona", "kr", "", ""},
	{"SGD", "702", d2, "Singapore dollar", "S$", "", ""},
	{"SHP", "654", d2, "Saint Helena pound", "£", "", ""},
	{"SLE", "925", d2, "Sierra Leonean leone", "Le", "2022-04-01", ""},
	{"SOS", "706", d2, "Somali shilling", "S", "", ""},
	{"SRD", "968", d2, "Surinamese dollar", "$", "2004-01-01", ""},
	{"SSP", "728", d2, "South Sudanese pound", "£", "2011-07-18", ""},
	{"STN", "930", d2, "São Tomé and Príncipe dobra", "Db", "2018-01-01", ""},
	{"SVC", "222", d2, "Salvadoran colón", "₡", "", ""},
	{"SYP", "760", d2, "Syrian pound", "£", "", ""},
	{"SZL", "748", d2, "Swazi lilangeni", "E", "", ""},
	{"THB", "764", d2, "Thai baht", "฿", "", ""},
	{"TJS", "972", d2, "Tajikistani somoni", "SM", "", ""},
	{"TMT", "934", d2, "Turkmenistan manat", "m", "2009-01-01", ""},
	{"TND", "788", d3, "Tunisian dinar", "DT", "", ""},
	{"TOP", "776", d2, "Tongan paʻanga", "T$", "", ""},
	{"TRY", "949", d2, "Turkish lira", "₺", "2005-01-01", ""},
	{"TTD", "780", d2, "Trinidad and Tobago dollar", "TT$", "", ""},
	{"TWD", "901", d2, "New Taiwan dollar", "NT$", "", ""},
	{"TZS", "834", d2, "Tanzanian shilling", "x/y", "", ""},
	{"UAH", "980", d2, "Ukrainian hryvnia", "₴", "", ""},
	{"UGX", "800", d0, "Ugandan shilling", "USh", "", ""},
	{"USD", "840", d2, "United States dollar", "$", "", ""},
	{"USN", "997", d2, "United States dollar (next day) (funds code)", "$", "", ""},
	{"UYI", "940", d0, "Uruguay Peso en Unidades Indexadas (funds code)", "", "", ""},
	{"UYU", "858", d2, "Uruguayan peso", "$U", "", ""},
	{"UYW", "927", d4, "Unidad previsional", "", "2018-08-29", ""},
	{"UZS", "860", d2, "Uzbekistan som", "лв", "", ""},
	{"VED", "926", d2, "Venezuelan digital bolívar", "Bs.D", "2021-10-01", ""},
	{"VES", "928", d2, "Venezuelan sovereign bolívar", "Bs.S", "2018-08-20", ""},
	{"VND", "704", d0, "Vietnamese đồng", "₫", "", ""},
	{"VUV", "548", d0, "Vanuatu vatu", "VT", "", ""},
	{"WST", "882", d2, "Samoan tala", "WS$", "", ""},
	{"XAF", "950", d0, "CFA franc BEAC", "FCFA", "", ""},
	{"XAG", "961", na, "Silver (one troy ounce)", "", "", ""},
	{"XAU", "959", na, "Gold (one troy ounce)", "", "", ""},
	{"XBA", "955", na, "European Composite Unit (EURCO) (bond market unit)", "", "", ""},
	{"XBB", "956", na, "European Monetary Unit (E.M.U.-6) (bond market unit)", "", "", ""},
	{"XBC", "957", na, "European Unit of Account 9 (E.U.A.-9) (bond market unit)", "", "", ""},
	{"XBD", "958", na, "European Unit of Account 17 (E.U.A.-17) (bond market unit)", "", "", ""},
	{"XCD", "951", d2, "East Caribbean dollar", "$", "", ""},
	{"XCG", "532", d2, "Caribbean guilder", "Cg", "2025-03-31", ""},
	{"XDR", "960", na, "Special drawing rights", "SDR", "", ""},
	{"XOF", "952", d0, "CFA franc BCEAO", "CFA", "", ""},
	{"XPD", "964", na, "Palladium (one troy ounce)", "", "", ""},
	{"XPF", "953", d0, "CFP franc", "F", "", ""},
	{"XPT", "962", na, "Platinum (one troy ounce)", "", "", ""},
	{"XSU", "994", na, "SUCRE", "", "", ""},
	{"XTS", "963", na, "Code reserved for testing purposes", "", "", ""},
	{"XUA", "965", na, "ADB Unit of Account", "", "", ""},
	{"XXX", "999", na, "No currency", "", "", ""},
	{"YER", "886", d2, "Yemeni rial", "﷼", "", ""},
	{"ZAR", "710", d2, "South African rand", "R", "", ""},
	{"ZMW", "967", d2, "Zambian kwacha", "ZK", "2013-01-01", ""},
	{"ZWG", "924", d2, "Zimbabwe Gold", "ZiG", "2024-06-25", ""},
}

// isoHistoric holds superseded codes with the window in which they were in use.
var isoHistoric = []seedRow{
	{"ADP", "020", d0, "Andorran peseta", "", "", "2002-02-28"},
	{"AFA", "004", d2, "Afghan afghani", "", "", "2003-01-01"},
	{"ALK", "008", d2, "Albanian lek (old)", "", "", "1989-12-31"},
	{"ANG", "532", d2, "Netherlands Antillean guilder", "ƒ", "", "2025-06-30"},
	{"AOK", "024", d0, "Angolan kwanza", "", "", "1991-03-31"},
	{"AON", "024", d0, "Angolan new kwanza", "", "", "2000-02-29"},
	{"AOR", "982", d0, "Angolan kwanza reajustado", "", "", "2000-02-29"},
	{"ARA", "032", d2, "Argentine austral", "", "", "1992-01-31"},
	{"ARP", "032", d2, "Argentine peso argentino", "", "", "1985-07-31"},
	{"ATS", "040", d2, "Austrian schilling", "öS", "", "2002-02-28"},
	{"AZM", "031", d0, "Azerbaijani manat", "", "1992-08-15", "2005-12-31"},
	{"BAD", "070", d2, "Bosnia and Herzegovina dinar", "", "", "1998-07-31"},
	{"BEC", "993", d2, "Belgian convertible franc", "", "", "1990-03-31"},
	{"BEF", "056", d2, "Belgian franc", "fr.", "", "2001-12-31"},
	{"BEL", "992", d2, "Belgian financial franc", "", "", "1990-03-31"},
	{"BGL", "100", d2, "Bulgarian lev A/99", "лв.", "", "1999-07-04"},
	{"BGN", "975", d2, "Bulgarian lev", "лв.", "1999-07-05", "2025-12-31"},
	{"BOP", "068", d2, "Bolivian peso", "", "", "1987-02-28"},
	{"BRB", "076", d2, "Brazilian cruzeiro", "", "", "1986-03-31"},
	{"BRC", "076", d2, "Brazilian cruzado", "", "", "1989-02-28"},
	{"BRE", "076", d2, "Brazilian cruzeiro (1990)", "", "", "1993-03-31"},
	{"BRN", "076", d2, "Brazilian cruzado novo", "", "", "1990-03-31"},
	{"BRR", "987", d2, "Brazilian cruzeiro real", "", "", "1994-07-31"},
	{"BUK", "104", d2, "Burmese kyat", "", "", "1990-02-28"},
	{"BYB", "112", d2, "Belarusian ruble", "Br", "1992-01-01", "1999-12-31"},
	{"BYR", "974", d0, "Belarusian ruble", "Br", "2000-01-01", "2016-06-30"},
	{"CHC", "948", d2, "WIR franc (for electronic)", "", "", "2004-11-30"},
	{"CSD", "891", d2, "Serbian dinar", "", "2003-07-03", "2006-10-25"},
	{"CSK", "200", d2, "Czechoslovak koruna", "", "", "1993-03-31"},
	{"CYP", "196", d2, "Cypriot pound", "£", "", "2007-12-31"},
	{"DDM", "278", d2, "East German mark", "", "", "1990-07-31"},
	{"DEM", "276", d2, "German mark", "DM", "", "2001-12-31"},
	{"ECS", "218", d0, "Ecuadorian sucre", "", "", "2000-09-30"},
	{"ECV", "983", d2, "Ecuador unidad de valor constante", "", "", "2000-09-30"},
	{"EEK", "233", d2, "Estonian kroon", "kr", "1992-01-01", "2010-12-31"},
	{"ESP", "724", d0, "Spanish peseta", "Pta", "", "2001-12-31"},
	{"FIM", "246", d2, "Finnish markka", "mk", "", "2001-12-31"},
	{"FRF", "250", d2, "French franc", "₣", "", "2001-12-31"},
	{"GEK", "268", d0, "Georgian kuponi", "", "", "1995-10-31"},
	{"GHC", "288", d0, "Ghanaian cedi", "₵", "", "2007-06-30"},
	{"GQE", "226", d2, "Equatorial Guinean ekwele", "", "", "1986-06-30"},
	{"GRD", "300", d2, "Greek drachma", "₯", "", "2001-12-31"},
	{"GWP", "624", d2, "Guinea-Bissau peso", "", "", "1997-05-31"},
	{"HRK", "191", d2, "Croatian kuna", "kn", "", "2022-12-31"},
	{"IEP", "372", d2, "Irish pound", "£", "", "2001-12-31"},
	{"ITL", "380", d0, "Italian lira", "₤", "", "2001-12-31"},
	{"LTL", "440", d2, "Lithuanian litas", "Lt", "", "2014-12-31"},
	{"LTT", "440", d2, "Lithuanian talonas", "", "", "1993-07-31"},
	{"LUC", "989", d2, "Luxembourg convertible franc", "", "", "1990-03-31"},
	{"LUF", "442", d2, "Luxembourg franc", "F", "", "2001-12-31"},
	{"LUL", "988", d2, "Luxembourg financial franc", "", "", "1990-03-31"},
	{"LVL", "428", d2, "Latvian lats", "Ls", "", "2013-12-31"},
	{"LVR", "428", d2, "Latvian rublis", "", "", "1994-12-31"},
	{"MGF", "450", d0, "Malagasy franc", "", "", "2004-12-31"},
	{"MLF", "466", d0, "Malian franc", "", "", "1984-11-30"},
	{"MRO", "478", z07, "Mauritanian ouguiya", "UM", "", "2017-12-31"},
	{"MTL", "470", d2, "Maltese lira", "₤", "", "2007-12-31"},
	{"MTP", "470", d2, "Maltese pound", "", "", "1983-06-30"},
	{"MVQ", "462", d2, "Maldivian rupee", "", "", "1989-12-31"},
	{"MXP", "484", d2, "Mexican peso (old)", "", "", "1993-01-31"},
	{"MZM", "508", d0, "Mozambican metical", "MTn", "", "2006-06-30"},
	{"NIC", "558", d2, "Nicaraguan córdoba (old)", "", "", "1990-10-31"},
	{"NLG", "528", d2, "Dutch guilder", "ƒ", "", "2001-12-31"},
	{"PEI", "604", d2, "Peruvian inti", "", "", "1991-07-31"},
	{"PES", "604", d2, "Peruvian sol (old)", "", "", "1986-02-28"},
	{"PLZ", "616", d2, "Polish zloty A/94", "", "", "1997-12-31"},
	{"PTE", "620", d0, "Portuguese escudo", "$", "", "2001-12-31"},
	{"ROL", "642", d0, "Romanian leu A/05", "", "", "2005-06-30"},
	{"RUR", "810", d2, "Russian ruble A/97", "р.", "", "1997-12-31"},
	{"SDD", "736", d0, "Sudanese dinar", "", "1992-06-08", "2007-06-30"},
	{"SDP", "736", d2, "Sudanese pound (old)", "", "", "1998-06-30"},
	{"SIT", "705", d2, "Slovenian tolar", "", "", "2006-12-31"},
	{"SKK", "703", d2, "Slovak koruna", "Sk", "", "2008-12-31"},
	{"SLL", "694", d2, "Sierra Leonean leone", "Le", "", "2023-12-31"},
	{"SRG", "740", d2, "Suriname guilder", "", "", "2003-12-31"},
	{"STD", "678", d0, "São Tomé and Príncipe dobra", "Db", "", "2017-12-31"},
	{"SUR", "810", d2, "Soviet ruble", "", "", "1990-12-31"},
	{"TJR", "762", d0, "Tajikistani ruble", "", "", "2001-04-30"},
	{"TMM", "795", d0, "Turkmenistani manat", "", "", "2008-12-31"},
	{"TPE", "626", d0, "Portuguese Timor escudo", "", "", "2002-11-30"},
	{"TRL", "792", d0, "Turkish lira A/05", "", "", "2004-12-31"},
	{"UAK", "804", d2, "Ukrainian karbovanets", "", "", "1996-09-30"},
	{"UGS", "800", d2, "Ugandan shilling (old)", "", "", "1987-05-31"},
	{"USS", "998", d2, "US dollar (same day)", "", "", "2014-03-31"},
	{"UYP", "858", d2, "Uruguayan nuevo peso", "", "", "1993-03-31"},
	{"VEB", "862", d2, "Venezuelan bolívar", "Bs.", "", "2007-12-31"},
	{"VEF", "937", d2, "Venezuelan bolívar fuerte", "Bs.F.", "2008-01-01", "2018-08-20"},
	{"XEU", "954", na, "European Currency Unit", "ECU", "1979-03-13", "1998-12-31"},
	{"XFO", "", na, "Gold franc (special settlement currency)", "", "", "2003-12-31"},
	{"XFU", "", na, "UIC franc (special settlement currency)", "", "", "2013-11-07"},
	{"XRE", "", na, "RINET funds code", "", "", "1999-11-30"},
	{"YDD", "720", d2, "South Yemeni dinar", "", "", "1991-09-30"},
	{"YUD", "890", d2, "Yugoslav hard dinar", "", "", "1990-01-31"},
	{"YUM", "891", d2, "Yugoslav dinar", "", "1994-01-24", "2003-07-02"},
	{"YUN", "890", d2, "Yugoslav convertible dinar", "", "", "1995-11-30"},
	{"ZAL", "991", d2, "South African financial rand", "", "", "1995-03-31"},
	{"ZMK", "894", d2, "Zambian kwacha", "", "1968-01-16", "2012-12-31"},
	{"ZRN", "180", d2, "Zairean new zaire", "", "", "1999-06-30"},
	{"ZRZ", "180", d2, "Zairean zaire", "", "", "1994-02-28"},
	{"ZWD", "716", d2, "Zimbabwean dollar A/06", "Z$", "1980-04-18", "2006-07-31"},
	{"ZWL", "932", d2, "Zimbabwean dollar A/10", "$", "2009-02-03", "2024-06-24"},
	{"ZWN", "942", d2, "Zimbabwean dollar A/08", "$", "2006-08-01", "2008-07-31"},
	{"ZWR", "935", d2, "Zimbabwean dollar A/09", "$", "2008-08-01", "2009-02-02"},
}

func seed(r *Registry, ns shared.Namespace, rows []seedRow) error {
	for _, row := range rows {
		p := domain.CurrencyParams{
			Code:        row.code,
			NumericCode: row.numeric,
			Digits:      row.digits,
			EnglishName: row.name,
			Symbol:      row.symbol,
			Namespace:   ns,
		}
		var err error
		if row.from != "" {
			if p.ValidFrom, err = time.Parse("2006-01-02", row.from); err != nil {
				return fmt.Errorf("seed %s: %w", row.code, err)
			}
		}
		if row.to != "" {
			if p.ValidTo, err = time.Parse("2006-01-02", row.to); err != nil {
				return fmt.Errorf("seed %s: %w", row.code, err)
			}
		}
		c, err := domain.NewCurrency(p)
		if err != nil {
			return fmt.Errorf("seed %s: %w", row.code, err)
		}
		if err := r.Register(c); err != nil {
			return fmt.Errorf("seed %s: %w", row.code, err)
		}
	}
	return nil
}

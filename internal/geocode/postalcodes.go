package geocode

import "github.com/lumivahti/snowload-service/internal/domain"

// staticPostalCodes is a hand-curated table of Finnish postal codes.
// Coordinates point at the city/district center, which is plenty for
// station search and service-area gating. Codes here resolve without any
// network access; everything else goes through Nominatim.
var staticPostalCodes = map[string]domain.PostalLocation{
	// Helsinki
	"00100": {PostalCode: "00100", Lat: 60.1699, Lon: 24.9384, City: "Helsinki"},
	"00120": {PostalCode: "00120", Lat: 60.1615, Lon: 24.9427, City: "Helsinki"},
	"00140": {PostalCode: "00140", Lat: 60.1570, Lon: 24.9561, City: "Helsinki"},
	"00180": {PostalCode: "00180", Lat: 60.1630, Lon: 24.9180, City: "Helsinki"},
	"00200": {PostalCode: "00200", Lat: 60.1580, Lon: 24.8840, City: "Helsinki"},
	"00250": {PostalCode: "00250", Lat: 60.1880, Lon: 24.9180, City: "Helsinki"},
	"00300": {PostalCode: "00300", Lat: 60.2010, Lon: 24.8940, City: "Helsinki"},
	"00500": {PostalCode: "00500", Lat: 60.1870, Lon: 24.9600, City: "Helsinki"},
	"00550": {PostalCode: "00550", Lat: 60.1960, Lon: 24.9500, City: "Helsinki"},
	"00700": {PostalCode: "00700", Lat: 60.2230, Lon: 25.0140, City: "Helsinki"},
	"00870": {PostalCode: "00870", Lat: 60.2080, Lon: 25.1420, City: "Helsinki"},
	"00980": {PostalCode: "00980", Lat: 60.2170, Lon: 25.1460, City: "Helsinki"},
	// Espoo
	"02100": {PostalCode: "02100", Lat: 60.1760, Lon: 24.8050, City: "Espoo"},
	"02150": {PostalCode: "02150", Lat: 60.1840, Lon: 24.8310, City: "Espoo"},
	"02600": {PostalCode: "02600", Lat: 60.2050, Lon: 24.7540, City: "Espoo"},
	"02650": {PostalCode: "02650", Lat: 60.2230, Lon: 24.8080, City: "Espoo"},
	"02770": {PostalCode: "02770", Lat: 60.2050, Lon: 24.6560, City: "Espoo"},
	// Vantaa
	"01300": {PostalCode: "01300", Lat: 60.2930, Lon: 25.0380, City: "Vantaa"},
	"01600": {PostalCode: "01600", Lat: 60.2610, Lon: 24.8510, City: "Vantaa"},
	"01510": {PostalCode: "01510", Lat: 60.3080, Lon: 24.9620, City: "Vantaa"},
	// Kauniainen
	"02700": {PostalCode: "02700", Lat: 60.2110, Lon: 24.7290, City: "Kauniainen"},
	// Hyvinkää, Järvenpää, Kerava, Porvoo, Lohja
	"05800": {PostalCode: "05800", Lat: 60.6310, Lon: 24.8580, City: "Hyvinkää"},
	"04400": {PostalCode: "04400", Lat: 60.4720, Lon: 25.0900, City: "Järvenpää"},
	"04200": {PostalCode: "04200", Lat: 60.4030, Lon: 25.1050, City: "Kerava"},
	"06100": {PostalCode: "06100", Lat: 60.3920, Lon: 25.6650, City: "Porvoo"},
	"08100": {PostalCode: "08100", Lat: 60.2500, Lon: 24.0650, City: "Lohja"},
	// Turku and the southwest
	"20100": {PostalCode: "20100", Lat: 60.4518, Lon: 22.2666, City: "Turku"},
	"20500": {PostalCode: "20500", Lat: 60.4550, Lon: 22.2880, City: "Turku"},
	"20720": {PostalCode: "20720", Lat: 60.4350, Lon: 22.3330, City: "Turku"},
	"21100": {PostalCode: "21100", Lat: 60.4670, Lon: 22.0280, City: "Naantali"},
	"21200": {PostalCode: "21200", Lat: 60.4820, Lon: 22.3720, City: "Raisio"},
	"24100": {PostalCode: "24100", Lat: 60.3850, Lon: 23.1250, City: "Salo"},
	// Tampere region
	"33100": {PostalCode: "33100", Lat: 61.4980, Lon: 23.7610, City: "Tampere"},
	"33200": {PostalCode: "33200", Lat: 61.5000, Lon: 23.7510, City: "Tampere"},
	"33500": {PostalCode: "33500", Lat: 61.5050, Lon: 23.7900, City: "Tampere"},
	"33720": {PostalCode: "33720", Lat: 61.4490, Lon: 23.8570, City: "Tampere"},
	"33960": {PostalCode: "33960", Lat: 61.4620, Lon: 23.6490, City: "Pirkkala"},
	"37100": {PostalCode: "37100", Lat: 61.3430, Lon: 23.7490, City: "Nokia"},
	"36200": {PostalCode: "36200", Lat: 61.4650, Lon: 24.0780, City: "Kangasala"},
	"37500": {PostalCode: "37500", Lat: 61.4670, Lon: 23.6230, City: "Lempäälä"},
	// Lahti, Kouvola, Kotka
	"15100": {PostalCode: "15100", Lat: 60.9830, Lon: 25.6560, City: "Lahti"},
	"15140": {PostalCode: "15140", Lat: 60.9900, Lon: 25.6650, City: "Lahti"},
	"18100": {PostalCode: "18100", Lat: 61.1730, Lon: 26.0380, City: "Heinola"},
	"45100": {PostalCode: "45100", Lat: 60.8680, Lon: 26.7040, City: "Kouvola"},
	"48100": {PostalCode: "48100", Lat: 60.4660, Lon: 26.9450, City: "Kotka"},
	"49400": {PostalCode: "49400", Lat: 60.5700, Lon: 27.1980, City: "Hamina"},
	// Lappeenranta, Imatra
	"53100": {PostalCode: "53100", Lat: 61.0580, Lon: 28.1860, City: "Lappeenranta"},
	"55100": {PostalCode: "55100", Lat: 61.1720, Lon: 28.7760, City: "Imatra"},
	// Hämeenlinna, Riihimäki, Forssa
	"13100": {PostalCode: "13100", Lat: 60.9960, Lon: 24.4640, City: "Hämeenlinna"},
	"11100": {PostalCode: "11100", Lat: 60.7390, Lon: 24.7720, City: "Riihimäki"},
	"30100": {PostalCode: "30100", Lat: 60.8140, Lon: 23.6220, City: "Forssa"},
	// Pori, Rauma
	"28100": {PostalCode: "28100", Lat: 61.4850, Lon: 21.7970, City: "Pori"},
	"26100": {PostalCode: "26100", Lat: 61.1280, Lon: 21.5110, City: "Rauma"},
	"32200": {PostalCode: "32200", Lat: 61.1260, Lon: 22.1830, City: "Loimaa"},
	// Jyväskylä region
	"40100": {PostalCode: "40100", Lat: 62.2415, Lon: 25.7209, City: "Jyväskylä"},
	"40520": {PostalCode: "40520", Lat: 62.2380, Lon: 25.7680, City: "Jyväskylä"},
	"40740": {PostalCode: "40740", Lat: 62.2130, Lon: 25.7100, City: "Jyväskylä"},
	"44100": {PostalCode: "44100", Lat: 62.5640, Lon: 25.7550, City: "Äänekoski"},
	"42100": {PostalCode: "42100", Lat: 62.0260, Lon: 24.4630, City: "Jämsä"},
	// Mikkeli, Savonlinna, Varkaus
	"50100": {PostalCode: "50100", Lat: 61.6880, Lon: 27.2720, City: "Mikkeli"},
	"57100": {PostalCode: "57100", Lat: 61.8680, Lon: 28.8790, City: "Savonlinna"},
	"78200": {PostalCode: "78200", Lat: 62.3150, Lon: 27.8730, City: "Varkaus"},
	"76100": {PostalCode: "76100", Lat: 62.1290, Lon: 27.4590, City: "Pieksämäki"},
	// Kuopio and North Savo (the service-area core)
	"70100": {PostalCode: "70100", Lat: 62.8924, Lon: 27.6770, City: "Kuopio"},
	"70110": {PostalCode: "70110", Lat: 62.8890, Lon: 27.6620, City: "Kuopio"},
	"70200": {PostalCode: "70200", Lat: 62.8980, Lon: 27.6340, City: "Kuopio"},
	"70210": {PostalCode: "70210", Lat: 62.9010, Lon: 27.6520, City: "Kuopio"},
	"70300": {PostalCode: "70300", Lat: 62.9240, Lon: 27.6450, City: "Kuopio"},
	"70420": {PostalCode: "70420", Lat: 62.8990, Lon: 27.6050, City: "Kuopio"},
	"70500": {PostalCode: "70500", Lat: 62.9110, Lon: 27.6900, City: "Kuopio"},
	"70600": {PostalCode: "70600", Lat: 62.8760, Lon: 27.6360, City: "Kuopio"},
	"70700": {PostalCode: "70700", Lat: 62.8660, Lon: 27.6730, City: "Kuopio"},
	"70780": {PostalCode: "70780", Lat: 62.8460, Lon: 27.6210, City: "Kuopio"},
	"70800": {PostalCode: "70800", Lat: 62.8930, Lon: 27.5590, City: "Kuopio"},
	"70820": {PostalCode: "70820", Lat: 62.9270, Lon: 27.7440, City: "Kuopio"},
	"70910": {PostalCode: "70910", Lat: 62.9750, Lon: 27.5220, City: "Kuopio"},
	"71800": {PostalCode: "71800", Lat: 63.0840, Lon: 27.2720, City: "Siilinjärvi"},
	"71750": {PostalCode: "71750", Lat: 63.1540, Lon: 27.3140, City: "Maaninka"},
	"71200": {PostalCode: "71200", Lat: 62.7680, Lon: 27.4240, City: "Tuusniemi"},
	"72400": {PostalCode: "72400", Lat: 63.0980, Lon: 26.6590, City: "Pielavesi"},
	"73100": {PostalCode: "73100", Lat: 63.0550, Lon: 27.7850, City: "Lapinlahti"},
	"74100": {PostalCode: "74100", Lat: 63.5580, Lon: 27.1850, City: "Iisalmi"},
	"77600": {PostalCode: "77600", Lat: 62.6430, Lon: 27.0270, City: "Suonenjoki"},
	// Joensuu and North Karelia
	"80100": {PostalCode: "80100", Lat: 62.6010, Lon: 29.7630, City: "Joensuu"},
	"80200": {PostalCode: "80200", Lat: 62.6100, Lon: 29.8120, City: "Joensuu"},
	"82500": {PostalCode: "82500", Lat: 62.2490, Lon: 30.0550, City: "Kitee"},
	"83900": {PostalCode: "83900", Lat: 63.1070, Lon: 30.2540, City: "Juuka"},
	"81700": {PostalCode: "81700", Lat: 63.3170, Lon: 30.0260, City: "Lieksa"},
	// Kajaani, Kuhmo
	"87100": {PostalCode: "87100", Lat: 64.2240, Lon: 27.7330, City: "Kajaani"},
	"88900": {PostalCode: "88900", Lat: 64.1260, Lon: 29.5190, City: "Kuhmo"},
	"89600": {PostalCode: "89600", Lat: 64.8890, Lon: 28.9160, City: "Suomussalmi"},
	// Vaasa, Seinäjoki, Kokkola
	"65100": {PostalCode: "65100", Lat: 63.0960, Lon: 21.6160, City: "Vaasa"},
	"60100": {PostalCode: "60100", Lat: 62.7900, Lon: 22.8400, City: "Seinäjoki"},
	"67100": {PostalCode: "67100", Lat: 63.8380, Lon: 23.1310, City: "Kokkola"},
	"68600": {PostalCode: "68600", Lat: 63.6750, Lon: 22.7020, City: "Pietarsaari"},
	// Oulu region
	"90100": {PostalCode: "90100", Lat: 65.0121, Lon: 25.4651, City: "Oulu"},
	"90120": {PostalCode: "90120", Lat: 65.0080, Lon: 25.4880, City: "Oulu"},
	"90570": {PostalCode: "90570", Lat: 65.0550, Lon: 25.4400, City: "Oulu"},
	"90650": {PostalCode: "90650", Lat: 64.9830, Lon: 25.5240, City: "Oulu"},
	"92100": {PostalCode: "92100", Lat: 64.6840, Lon: 24.4790, City: "Raahe"},
	"93100": {PostalCode: "93100", Lat: 65.3570, Lon: 26.9840, City: "Pudasjärvi"},
	"93600": {PostalCode: "93600", Lat: 65.9660, Lon: 29.1890, City: "Kuusamo"},
	// Lapland
	"94100": {PostalCode: "94100", Lat: 65.7360, Lon: 24.5640, City: "Kemi"},
	"95400": {PostalCode: "95400", Lat: 65.8480, Lon: 24.1440, City: "Tornio"},
	"96100": {PostalCode: "96100", Lat: 66.5030, Lon: 25.7290, City: "Rovaniemi"},
	"96200": {PostalCode: "96200", Lat: 66.5160, Lon: 25.7500, City: "Rovaniemi"},
	"98100": {PostalCode: "98100", Lat: 66.7170, Lon: 27.4310, City: "Kemijärvi"},
	"99100": {PostalCode: "99100", Lat: 67.6560, Lon: 24.9120, City: "Kittilä"},
	"99130": {PostalCode: "99130", Lat: 67.8040, Lon: 24.8090, City: "Sirkka"},
	"99600": {PostalCode: "99600", Lat: 67.4180, Lon: 26.5900, City: "Sodankylä"},
	"99800": {PostalCode: "99800", Lat: 68.6590, Lon: 27.5390, City: "Ivalo"},
	"99870": {PostalCode: "99870", Lat: 68.9060, Lon: 27.0270, City: "Inari"},
	"99980": {PostalCode: "99980", Lat: 69.7500, Lon: 27.0110, City: "Utsjoki"},
	"99300": {PostalCode: "99300", Lat: 67.6070, Lon: 23.6720, City: "Muonio"},
	"99400": {PostalCode: "99400", Lat: 68.3830, Lon: 23.6420, City: "Enontekiö"},
}

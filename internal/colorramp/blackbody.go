package colorramp

// blackbodyColor holds the red, green and blue multipliers of the white point
// for color temperatures from MinTemperature to MaxTemperature in TableStep
// increments. 6500K is neutral.
var blackbodyColor = [][3]float64{
	{1.00000000, 0.18172716, 0.00000000}, // 1000K
	{1.00000000, 0.25503671, 0.00000000},
	{1.00000000, 0.30942099, 0.00000000},
	{1.00000000, 0.35357379, 0.00000000},
	{1.00000000, 0.39091524, 0.00000000},
	{1.00000000, 0.42322816, 0.00000000},
	{1.00000000, 0.45159884, 0.00000000},
	{1.00000000, 0.47675916, 0.00000000},
	{1.00000000, 0.49923747, 0.00000000},
	{1.00000000, 0.51943421, 0.00000000},
	{1.00000000, 0.54360078, 0.08679949}, // 2000K
	{1.00000000, 0.56618736, 0.14065513},
	{1.00000000, 0.58734976, 0.18362641},
	{1.00000000, 0.60724493, 0.22137978},
	{1.00000000, 0.62600248, 0.25591950},
	{1.00000000, 0.64373109, 0.28819679},
	{1.00000000, 0.66052319, 0.31873863},
	{1.00000000, 0.67645822, 0.34786758},
	{1.00000000, 0.69160518, 0.37579588},
	{1.00000000, 0.70602449, 0.40267128},
	{1.00000000, 0.71976951, 0.42860152}, // 3000K
	{1.00000000, 0.73288760, 0.45366838},
	{1.00000000, 0.74542112, 0.47793608},
	{1.00000000, 0.75740814, 0.50145662},
	{1.00000000, 0.76888303, 0.52427322},
	{1.00000000, 0.77987699, 0.54642268},
	{1.00000000, 0.79041843, 0.56793692},
	{1.00000000, 0.80053332, 0.58884417},
	{1.00000000, 0.81024551, 0.60916971},
	{1.00000000, 0.81957693, 0.62893653},
	{1.00000000, 0.82854786, 0.64816570}, // 4000K
	{1.00000000, 0.83717703, 0.66687674},
	{1.00000000, 0.84548188, 0.68508786},
	{1.00000000, 0.85347859, 0.70281616},
	{1.00000000, 0.86118227, 0.72007777},
	{1.00000000, 0.86860704, 0.73688797},
	{1.00000000, 0.87576611, 0.75326132},
	{1.00000000, 0.88267187, 0.76921169},
	{1.00000000, 0.88933596, 0.78475236},
	{1.00000000, 0.89576933, 0.79989606},
	{1.00000000, 0.90198230, 0.81465502}, // 5000K
	{1.00000000, 0.90963069, 0.82838210},
	{1.00000000, 0.91710889, 0.84190889},
	{1.00000000, 0.92441842, 0.85523742},
	{1.00000000, 0.93156127, 0.86836903},
	{1.00000000, 0.93853986, 0.88130458},
	{1.00000000, 0.94535695, 0.89404470},
	{1.00000000, 0.95201559, 0.90658983},
	{1.00000000, 0.95851906, 0.91894041},
	{1.00000000, 0.96487079, 0.93109690},
	{1.00000000, 0.97107439, 0.94305985}, // 6000K
	{1.00000000, 0.97713351, 0.95482993},
	{1.00000000, 0.98305189, 0.96640795},
	{1.00000000, 0.98883326, 0.97779486},
	{1.00000000, 0.99448139, 0.98899179},
	{1.00000000, 1.00000000, 1.00000000},
	{0.98947904, 0.99348723, 1.00000000},
	{0.97942535, 0.98723738, 1.00000000},
	{0.96974553, 0.98120661, 1.00000000},
	{0.96046634, 0.97540338, 1.00000000},
	{0.95160805, 0.96983355, 1.00000000}, // 7000K
	{0.94312244, 0.96447879, 1.00000000},
	{0.93494092, 0.95930970, 1.00000000},
	{0.92704949, 0.95431468, 1.00000000},
	{0.91943491, 0.94948310, 1.00000000},
	{0.91208467, 0.94480520, 1.00000000},
	{0.90498695, 0.94027202, 1.00000000},
	{0.89813054, 0.93587529, 1.00000000},
	{0.89150485, 0.93160742, 1.00000000},
	{0.88509984, 0.92746137, 1.00000000},
	{0.87890600, 0.92343065, 1.00000000}, // 8000K
	{0.87292490, 0.91952379, 1.00000000},
	{0.86715244, 0.91574398, 1.00000000},
	{0.86157221, 0.91207815, 1.00000000},
	{0.85616932, 0.90851461, 1.00000000},
	{0.85093020, 0.90504290, 1.00000000},
	{0.84584256, 0.90165361, 1.00000000},
	{0.84089516, 0.89833836, 1.00000000},
	{0.83607780, 0.89508960, 1.00000000},
	{0.83138117, 0.89190060, 1.00000000},
	{0.82679678, 0.88876531, 1.00000000}, // 9000K
	{0.82232843, 0.88565841, 1.00000000},
	{0.81798053, 0.88257259, 1.00000000},
	{0.81374642, 0.87952734, 1.00000000},
	{0.80961996, 0.87653970, 1.00000000},
	{0.80559541, 0.87362450, 1.00000000},
	{0.80166747, 0.87079459, 1.00000000},
	{0.79783120, 0.86806105, 1.00000000},
	{0.79408201, 0.86543339, 1.00000000},
	{0.79041561, 0.86291969, 1.00000000},
	{0.78682802, 0.86052675, 1.00000000}, // 10000K
	{0.78331609, 0.85822807, 1.00000000},
	{0.77987758, 0.85599132, 1.00000000},
	{0.77651010, 0.85381380, 1.00000000},
	{0.77321138, 0.85169297, 1.00000000},
	{0.76997924, 0.84962644, 1.00000000},
	{0.76681161, 0.84761194, 1.00000000},
	{0.76370650, 0.84564732, 1.00000000},
	{0.76066198, 0.84373057, 1.00000000},
	{0.75767624, 0.84185977, 1.00000000},
	{0.75474752, 0.84003309, 1.00000000}, // 11000K
	{0.75187413, 0.83824883, 1.00000000},
	{0.74905446, 0.83650535, 1.00000000},
	{0.74628696, 0.83480110, 1.00000000},
	{0.74357014, 0.83313462, 1.00000000},
	{0.74090256, 0.83150450, 1.00000000},
	{0.73828284, 0.82990943, 1.00000000},
	{0.73570967, 0.82834814, 1.00000000},
	{0.73318176, 0.82681943, 1.00000000},
	{0.73069789, 0.82532216, 1.00000000},
	{0.72825688, 0.82385524, 1.00000000}, // 12000K
	{0.72585758, 0.82241764, 1.00000000},
	{0.72349890, 0.82100835, 1.00000000},
	{0.72117977, 0.81962645, 1.00000000},
	{0.71889919, 0.81827103, 1.00000000},
	{0.71665615, 0.81694123, 1.00000000},
	{0.71444972, 0.81563622, 1.00000000},
	{0.71227897, 0.81435523, 1.00000000},
	{0.71014301, 0.81309750, 1.00000000},
	{0.70804099, 0.81186231, 1.00000000},
	{0.70597207, 0.81064897, 1.00000000}, // 13000K
	{0.70393547, 0.80945683, 1.00000000},
	{0.70193039, 0.80828524, 1.00000000},
	{0.69995610, 0.80713362, 1.00000000},
	{0.69801187, 0.80600137, 1.00000000},
	{0.69609700, 0.80488794, 1.00000000},
	{0.69421079, 0.80379279, 1.00000000},
	{0.69235261, 0.80271541, 1.00000000},
	{0.69052181, 0.80165531, 1.00000000},
	{0.68871776, 0.80061202, 1.00000000},
	{0.68693988, 0.79958506, 1.00000000}, // 14000K
	{0.68518758, 0.79857402, 1.00000000},
	{0.68346029, 0.79757846, 1.00000000},
	{0.68175748, 0.79659798, 1.00000000},
	{0.68007860, 0.79563219, 1.00000000},
	{0.67842315, 0.79468072, 1.00000000},
	{0.67679063, 0.79374319, 1.00000000},
	{0.67518054, 0.79281925, 1.00000000},
	{0.67359242, 0.79190858, 1.00000000},
	{0.67202580, 0.79101085, 1.00000000},
	{0.67048026, 0.79012573, 1.00000000}, // 15000K
	{0.66895534, 0.78925294, 1.00000000},
	{0.66745064, 0.78839216, 1.00000000},
	{0.66596573, 0.78754313, 1.00000000},
	{0.66450023, 0.78670557, 1.00000000},
	{0.66305375, 0.78587921, 1.00000000},
	{0.66162590, 0.78506379, 1.00000000},
	{0.66021633, 0.78425908, 1.00000000},
	{0.65882468, 0.78346483, 1.00000000},
	{0.65745059, 0.78268080, 1.00000000},
	{0.65609374, 0.78190678, 1.00000000}, // 16000K
	{0.65475379, 0.78114255, 1.00000000},
	{0.65343042, 0.78038789, 1.00000000},
	{0.65212332, 0.77964261, 1.00000000},
	{0.65083218, 0.77890650, 1.00000000},
	{0.64955671, 0.77817938, 1.00000000},
	{0.64829661, 0.77746105, 1.00000000},
	{0.64705161, 0.77675135, 1.00000000},
	{0.64582143, 0.77605008, 1.00000000},
	{0.64460580, 0.77535708, 1.00000000},
	{0.64340446, 0.77467220, 1.00000000}, // 17000K
	{0.64221716, 0.77399525, 1.00000000},
	{0.64104363, 0.77332610, 1.00000000},
	{0.63988365, 0.77266460, 1.00000000},
	{0.63873697, 0.77201058, 1.00000000},
	{0.63760337, 0.77136391, 1.00000000},
	{0.63648260, 0.77072446, 1.00000000},
	{0.63537447, 0.77009208, 1.00000000},
	{0.63427874, 0.76946664, 1.00000000},
	{0.63319520, 0.76884802, 1.00000000},
	{0.63212366, 0.76823609, 1.00000000}, // 18000K
	{0.63106390, 0.76763074, 1.00000000},
	{0.63001574, 0.76703183, 1.00000000},
	{0.62897897, 0.76643927, 1.00000000},
	{0.62795342, 0.76585293, 1.00000000},
	{0.62693889, 0.76527270, 1.00000000},
	{0.62593521, 0.76469848, 1.00000000},
	{0.62494220, 0.76413018, 1.00000000},
	{0.62395969, 0.76356767, 1.00000000},
	{0.62298751, 0.76301087, 1.00000000},
	{0.62202550, 0.76245969, 1.00000000}, // 19000K
	{0.62107349, 0.76191401, 1.00000000},
	{0.62013133, 0.76137377, 1.00000000},
	{0.61919886, 0.76083886, 1.00000000},
	{0.61827593, 0.76030919, 1.00000000},
	{0.61736239, 0.75978469, 1.00000000},
	{0.61645810, 0.75926527, 1.00000000},
	{0.61556292, 0.75875085, 1.00000000},
	{0.61467671, 0.75824135, 1.00000000},
	{0.61379933, 0.75773669, 1.00000000},
	{0.61293064, 0.75723679, 1.00000000}, // 20000K
	{0.61207053, 0.75674159, 1.00000000},
	{0.61121885, 0.75625101, 1.00000000},
	{0.61037548, 0.75576497, 1.00000000},
	{0.60954031, 0.75528342, 1.00000000},
	{0.60871321, 0.75480627, 1.00000000},
	{0.60789406, 0.75433347, 1.00000000},
	{0.60708275, 0.75386496, 1.00000000},
	{0.60627916, 0.75340065, 1.00000000},
	{0.60548318, 0.75294051, 1.00000000},
	{0.60469471, 0.75248446, 1.00000000}, // 21000K
	{0.60391363, 0.75203244, 1.00000000},
	{0.60313984, 0.75158441, 1.00000000},
	{0.60237325, 0.75114029, 1.00000000},
	{0.60161373, 0.75070003, 1.00000000},
	{0.60086121, 0.75026359, 1.00000000},
	{0.60011558, 0.74983090, 1.00000000},
	{0.59937674, 0.74940191, 1.00000000},
	{0.59864461, 0.74897658, 1.00000000},
	{0.59791908, 0.74855485, 1.00000000},
	{0.59720007, 0.74813667, 1.00000000}, // 22000K
	{0.59648750, 0.74772200, 1.00000000},
	{0.59578127, 0.74731078, 1.00000000},
	{0.59508130, 0.74690297, 1.00000000},
	{0.59438750, 0.74649852, 1.00000000},
	{0.59369979, 0.74609740, 1.00000000},
	{0.59301810, 0.74569955, 1.00000000},
	{0.59234234, 0.74530493, 1.00000000},
	{0.59167244, 0.74491350, 1.00000000},
	{0.59100831, 0.74452522, 1.00000000},
	{0.59034988, 0.74414005, 1.00000000}, // 23000K
	{0.58969708, 0.74375795, 1.00000000},
	{0.58904984, 0.74337888, 1.00000000},
	{0.58840809, 0.74300279, 1.00000000},
	{0.58777175, 0.74262966, 1.00000000},
	{0.58714075, 0.74225945, 1.00000000},
	{0.58651503, 0.74189211, 1.00000000},
	{0.58589452, 0.74152761, 1.00000000},
	{0.58527916, 0.74116593, 1.00000000},
	{0.58466888, 0.74080702, 1.00000000},
	{0.58406361, 0.74045084, 1.00000000}, // 24000K
	{0.58346331, 0.74009737, 1.00000000},
	{0.58286789, 0.73974658, 1.00000000},
	{0.58227731, 0.73939843, 1.00000000},
	{0.58169151, 0.73905288, 1.00000000},
	{0.58111042, 0.73870992, 1.00000000},
	{0.58053399, 0.73836950, 1.00000000},
	{0.57996216, 0.73803160, 1.00000000},
	{0.57939488, 0.73769619, 1.00000000},
	{0.57883210, 0.73736323, 1.00000000},
	{0.57827375, 0.73703271, 1.00000000}, // 25000K
}

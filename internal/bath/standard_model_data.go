package bath

// Standard Model bath tables on LogTemperatureGrid (log10 of T in GeV):
// √g*, h_eff and g_eff, in that order.

var smSqrtGStarData = []float64{
	2.14362229727, 2.14404537786, 2.14482658516, 2.14620029234,
	2.14850651715, 2.15221187871, 2.15792213087, 2.16638027264,
	2.17844479382, 2.19504453842, 2.2171099413, 2.24548469471,
	2.28082658853, 2.32351038583, 2.37354798451, 2.43054067809,
	2.49367446093, 2.56176236457, 2.6333292368, 2.70672646374,
	2.78025914905, 2.85230750379, 2.9214274863, 2.98642159731,
	3.04637718807, 3.10067498861, 3.14897391864, 3.19117954067,
	3.22740323025, 3.25791793023, 3.2831148089, 3.30346364892,
	3.31947855372, 3.33168963031, 3.3406206686, 3.34677243188,
	3.3506109409, 3.35256002314, 3.35299737001, 3.35225336944,
	3.35061204056, 3.34831347555, 3.34555728245, 3.34250661294,
	3.33929244639, 3.33601788104, 3.33276225346, 3.32958496616,
	3.3265289512, 3.32362373492, 3.32088809604, 3.31833232835,
	3.31596013093, 3.31377015437, 3.31175723116, 3.30991331409,
	3.30822813488, 3.30668957742, 3.30528372937, 3.3039945271,
	3.30280282772, 3.30168460806, 3.30060777247, 3.29952671387,
	3.29837331368, 3.29704267156, 3.29537237356, 3.29311834238,
	3.28994552545, 3.28549019857, 3.27960801997, 3.2728834313,
	3.26704277231, 3.26426285468, 3.26528112239, 3.2686523963,
	3.27231059106, 3.27510195897, 3.27685527401, 3.27782767047,
	3.27832083529, 3.27855336855, 3.27865591732, 3.27869818695,
	3.27871436365, 3.27872003724, 3.27872188161, 3.27872270496,
	3.27872398728, 3.27872730505, 3.27873552566, 3.27875436829,
	3.27879479707, 3.27887663841, 3.27903370902, 3.27932054499,
	3.27982050922, 3.28065464593, 3.28199020907, 3.28404741027,
	3.28710271469, 3.29148704472, 3.29757757956, 3.30578245879,
	3.3165185545, 3.3301834651, 3.34712386789, 3.3676031906,
	3.39177206854, 3.41964511713, 3.45108709716, 3.48581059704,
	3.52338601701, 3.56326312418, 3.60480201926, 3.64731027992,
	3.6900825139, 3.73243864045, 3.77375785228, 3.81350621009,
	3.85125694105, 3.88670351713, 3.91966631032, 3.9500940063,
	3.97806106071, 4.0037624441, 4.02750690575, 4.04971011085,
	4.07088928621, 4.09166134627, 4.11274669014, 4.13498082625,
	4.15933578151, 4.18695343049, 4.21919478354, 4.2577156125,
	4.30459482752, 4.36257824266, 4.43557874769, 4.52974200631,
	4.65574794053, 4.83378564978, 5.10417465895, 5.54905654971,
	6.33094638373, 7.73195515186, 10.0602827592, 13.0484931023,
	14.9354940431, 13.9400579773, 11.3842977461, 9.45614158389,
	8.54211083825, 8.21155564852, 8.12433707403, 8.12455784445,
	8.15385549927, 8.19254459274, 8.23426880529, 8.27684269472,
	8.31931183281, 8.36111337714, 8.40187127944, 8.44135856372,
	8.47949176205, 8.51632247578, 8.55201866548, 8.58683589186,
	8.62108125181, 8.65507384397, 8.68910598418, 8.72340918879,
	8.75812822325, 8.79330540363, 8.82887602412, 8.86467446569,
	8.90044940516, 8.93588572477, 8.9706302909, 9.00431873007,
	9.03660062632, 9.06716110218, 9.09573741892, 9.12212993014,
	9.14620736363, 9.16790692352, 9.18723007208, 9.20423505584,
	9.21902730417, 9.23174877059, 9.24256714716, 9.25166568914,
	9.25923417701, 9.26546133498, 9.27052884439, 9.27460694185,
	9.27785148316, 9.28040228467, 9.28238251681, 9.28389891727,
	9.28504260385, 9.28589029491, 9.28650578587, 9.28694157741,
	9.28724060928, 9.2874381192, 9.28756371596, 9.2876438206,
	9.28770466777, 9.28777604759, 9.28789587989, 9.2881155332,
	9.28850554363, 9.2891610936, 9.29020635257, 9.29179664849,
	9.29411750546, 9.29737989516, 9.30181158924, 9.30764518733,
	9.31510410183, 9.32438833963, 9.33566218239, 9.34904572306,
	9.36461164247, 9.38238768489, 9.40236418798, 9.42450498089,
	9.4487592281, 9.47507155648, 9.50338813297, 9.53365719965,
	9.56582373746, 9.59981916031, 9.63554797261, 9.67287394916,
	9.71160851235, 9.75150360031, 9.79225055574, 9.83348559282,
	9.87480141263, 9.9157637049, 9.95593070983, 9.99487376814,
	10.0321968495, 10.0675533582, 10.1006589872, 10.1312999357,
	10.1593363362, 10.1847011977, 10.2073955166, 10.2274804312,
	10.2450673845, 10.2603072529, 10.2733792975, 10.2844806472,
	10.2938168368, 10.3015937443, 10.3080110945, 10.3132575541,
	10.3175073306, 10.3209181072, 10.3236301062, 10.3257660506,
	10.3274318008, 10.3287174641, 10.3296987975, 10.3304387638,
	10.3309891269, 10.3313920063, 10.3316813357, 10.3318841915,
	10.3320219735, 10.3321114353, 10.3321655664, 10.3321943372,
	10.3322053196, 10.3322041972, 10.3321951817, 10.3321813472,
	10.3321648981, 10.3321473798, 10.332129845, 10.3321129816,
	10.3320972122, 10.3320827693, 10.3320697521, 10.3320581694,
	10.3320479703, 10.3320390675, 10.3320313535, 10.3320247117,
	10.3320190244, 10.3320141779, 10.3320100654, 10.3320065889,
	10.3320036599, 10.3320011999, 10.3319991393, 10.3319974177,
	10.3319959827, 10.3319947889, 10.3319937978, 10.3319929765,
	10.3319922969, 10.3319917355, 10.3319912724, 10.3319908909,
	10.331990577, 10.331990319, 10.3319901072, 10.3319899335,
	10.3319897912, 10.3319896747, 10.3319895795, 10.3319895016,
	10.331989438, 10.3319893861, 10.3319893438, 10.3319893094,
	10.3319892813, 10.3319892584, 10.3319892399, 10.3319892247,
	10.3319892125, 10.3319892025, 10.3319891944, 10.3319891878,
	10.3319891825, 10.3319891782, 10.3319891747, 10.3319891719,
	10.3319891696, 10.3319891677, 10.3319891662, 10.331989165,
	10.331989164, 10.3319891632, 10.3319891626, 10.3319891621,
	10.3319891616,
}

var smHEffData = []float64{
	3.94737494942, 3.94755124696, 3.94789844774, 3.94855086154,
	3.94972286899, 3.95174016421, 3.95507461954, 3.96037931042,
	3.96851887994, 3.9805895821, 3.99792332943, 4.02207105275,
	4.05476262538, 4.09784326506, 4.15318929522, 4.22260893783,
	4.30773596585, 4.40992522902, 4.5301591257, 4.66897306049,
	4.82640600465, 5.00197977617, 5.19470793644, 5.40313260356,
	5.62538528585, 5.85926623226, 6.10233586879, 6.35201164042,
	6.60566393286, 6.86070558152, 7.11467063589, 7.365279376,
	7.61048792926, 7.84852208779, 8.07789598948, 8.29741714585,
	8.50617985572, 8.70354934428, 8.88913904235, 9.06278331492,
	9.22450771122, 9.37449849088, 9.51307282651, 9.6406507272,
	9.75772939815, 9.86486046309, 9.96263023923, 10.0516430693,
	10.1325075796, 10.2058256417, 10.2721837598, 10.3321465794,
	10.3862522066, 10.4350090401, 10.4788938303, 10.5183507076,
	10.5537909392, 10.585593189, 10.6141040615, 10.6396386912,
	10.6624810945, 10.6828838974, 10.7010668689, 10.7172133647,
	10.7314632726, 10.74390032, 10.7545309066, 10.7632520666,
	10.7698114366, 10.7737810926, 10.774612283, 10.7718942554,
	10.7658761164, 10.7579142505, 10.7501230137, 10.7442177736,
	10.7407295868, 10.7392470488, 10.7390611575, 10.7395708242,
	10.7403860348, 10.7412906873, 10.7421791184, 10.7430065789,
	10.7437586507, 10.7444346193, 10.7450392514, 10.7455790934,
	10.7460610345, 10.7464920064, 10.74687939, 10.7472321293,
	10.7475628399, 10.7478914161, 10.7482507965, 10.7486956098,
	10.749314342, 10.7502453851, 10.751696835, 10.7539692145,
	10.7574794966, 10.7627840121, 10.770597207, 10.7818029092,
	10.7974548877, 10.8187640963, 10.8470710505, 10.8838032021,
	10.9304187701, 10.9883400668, 11.0588807051, 11.1431719958,
	11.2420942258, 11.3562182743, 11.4857622204, 11.6305663295,
	11.7900882408, 11.9634185439, 12.1493154155, 12.3462557698,
	12.5524995673, 12.766163538, 12.985300565, 13.207981234,
	13.4323744804, 13.6568247777, 13.8799239275, 14.1005762795,
	14.3180572351, 14.5320662185, 14.7427768759, 14.9508889328,
	15.1576877147, 15.365118851, 15.5758878149, 15.793598719,
	16.0229588972, 16.2701052385, 16.5431762115, 16.853406114,
	17.2173582897, 17.6616748991, 18.2334188751, 19.0227524109,
	20.2116638828, 22.1697071458, 25.5901465177, 31.4468071706,
	40.0501453131, 49.3505104676, 56.1717757637, 59.7533824098,
	61.3140334064, 62.0017303909, 62.3907565161, 62.7042454857,
	63.0179909298, 63.3551864254, 63.7217609018, 64.1180740296,
	64.5424957347, 64.9924957164, 65.4650544506, 65.956915107,
	66.464801442, 66.9856178864, 67.516621742, 68.0555536164,
	68.6007150103, 69.1509871667, 69.7057914477, 70.2649976394,
	70.8287918231, 71.3975191352, 71.9715184386, 72.5509655847,
	73.1357397696, 73.7253239404, 74.3187458667, 74.9145619642,
	75.5108817734, 76.1054275663, 76.6956211261, 77.2786884092,
	77.8517725162, 78.4120460142, 78.9568149599, 79.4836087211,
	79.9902516451, 80.474914559, 80.9361458369, 81.3728832151,
	81.7844486098, 82.1705288795, 82.5311458033, 82.8666185598,
	83.1775217757, 83.4646418254, 83.7289335917, 83.9714793842,
	84.1934512288, 84.3960772968, 84.5806128834, 84.7483160709,
	84.9004280441, 85.0381579692, 85.1626724076, 85.2750894048,
	85.3764776417, 85.4678612975, 85.55023144, 85.6245647132,
	85.6918497021, 85.7531205497, 85.8094962098, 85.8622222926,
	85.912711075, 85.9625742573, 86.0136428149, 86.0679690562,
	86.1278078267, 86.1955765184, 86.2737967224, 86.3650234206,
	86.4717698782, 86.596437322, 86.7412577268, 86.9082556241,
	87.0992311664, 87.3157624644, 87.5592213115, 87.8307936683,
	88.1314952887, 88.4621738327, 88.8234915371, 89.215886426,
	89.6395143575, 90.0941781152, 90.5792525803, 91.0936163444,
	91.6355998395, 92.202958336, 92.7928753692, 93.4019988101,
	94.0265083782, 94.6622103685, 95.3046530252, 95.9492545489,
	96.5914351898, 97.226745209, 97.8509815165, 98.4602873173,
	99.0512308971, 99.6208615449, 100.166742357, 100.686961163,
	101.180121976, 101.645320137, 102.082104765, 102.490432161,
	102.870613676, 103.223261155, 103.549232549, 103.849579789,
	104.125500409, 104.378293933, 104.609323574, 104.819983446,
	105.011671194, 105.185765741, 105.343609737, 105.486496185,
	105.61565871, 105.732264925, 105.83741239, 105.932126673,
	106.017361099, 106.093997812, 106.162849833, 106.224663833,
	106.280123422, 106.329852747, 106.374420275, 106.414342636,
	106.450088442, 106.482082021, 106.510707006, 106.536309768,
	106.559202646, 106.579666985, 106.597955957, 106.614297186,
	106.628895159, 106.641933446, 106.653576737, 106.663972696,
	106.673253652, 106.681538134, 106.688932267, 106.695531033,
	106.70141941, 106.706673402, 106.711360967, 106.715542854,
	106.719273353, 106.722600973, 106.725569048, 106.728216281,
	106.730577237, 106.732682775, 106.734560448, 106.736234848,
	106.737727927, 106.739059274, 106.740246372, 106.741304818,
	106.742248529, 106.743089921, 106.74384007, 106.744508857,
	106.745105093, 106.745636639, 106.746110506, 106.746532945,
	106.746909531, 106.747245238, 106.747544498, 106.747811266,
	106.748049065, 106.748261041, 106.748449994, 106.748618424,
	106.748768559, 106.748902384, 106.749021671, 106.749127998,
	106.749222773, 106.74930725, 106.749382547, 106.749449662,
	106.749509484,
}

var smGEffData = []float64{
	3.39214426727, 3.39233915725, 3.39272240626, 3.39344128415,
	3.39473017251, 3.39694404439, 3.40059550123, 3.40639155322,
	3.41526496144, 3.42839420951, 3.44720634687, 3.47335817323,
	3.50869340525, 3.55517624422, 3.61480467125, 3.68950933495,
	3.78104567505, 3.89088773968, 4.02013199923, 4.16941848575,
	4.33887501708, 4.52808832705, 4.73610380964, 4.96145345422,
	5.20220954222, 5.45605993077, 5.72039940124, 5.99243071065,
	6.26926871653, 6.5480412497, 6.82598121739, 7.10050560733,
	7.36927847309, 7.63025644776, 7.88171670588, 8.122268457,
	8.35084993501, 8.56671341683, 8.76940107189, 8.95871445083,
	9.13468022377, 9.29751444138, 9.44758717619, 9.58538896139,
	9.71150002057, 9.82656290279, 9.93125881865, 10.026287722,
	10.112351995, 10.1901434669, 10.2603334213, 10.3235652046,
	10.380449046, 10.4315587062, 10.4774296009, 10.5185580743,
	10.5554015287, 10.5883791405, 10.6178729085, 10.6442287678,
	10.6677574645, 10.6887347859, 10.7074005517, 10.7239554379,
	10.7385541583, 10.7512927364, 10.7621867766, 10.7711378936,
	10.7778905107, 10.7820003859, 10.7828831588, 10.7800726954,
	10.7737613675, 10.7652891247, 10.7568257946, 10.7501897339,
	10.7460024143, 10.7438974563, 10.7431733277, 10.7432191225,
	10.7436314387, 10.7441826988, 10.7447586866, 10.7453084744,
	10.7458130591, 10.746268139, 10.746675525, 10.7470392443,
	10.7473640243, 10.747655002, 10.7479182413, 10.7481621058,
	10.748399856, 10.7486540913, 10.7489638227, 10.7493950197,
	10.750055337, 10.7511133548, 10.7528220242, 10.7555451526,
	10.7597847897, 10.7662064595, 10.7756585092, 10.7891815958,
	10.8080046267, 10.8335243574, 10.8672672643, 10.910834111,
	10.9658295865, 11.0337812516, 11.116053529, 11.2137633943,
	11.3277046333, 11.4582869893, 11.6054952958, 11.7688719542,
	11.9475240913, 12.1401547102, 12.3451153561, 12.5604764866,
	12.784110936, 13.0137856282, 13.2472569002, 13.4823653204,
	13.7171265572, 13.949815597, 14.1790424224, 14.4038182334,
	14.6236125441, 14.8384030518, 15.0487219806, 15.2557043817,
	15.4611453536, 15.6675742566, 15.8783553804, 16.0978282631,
	16.331511799, 16.5864245772, 16.8716408279, 17.199352603,
	17.5870458546, 18.0621495358, 18.6721878579, 19.507061229,
	20.7468666636, 22.7555551234, 26.2129458585, 32.0674209882,
	40.6028300734, 49.7830767224, 56.4934682802, 60.0126735308,
	61.5535099036, 62.2463331172, 62.6536505761, 62.9928775969,
	63.3372006539, 63.7084248373, 64.111466993, 64.5457528683,
	65.0087268748, 65.4969558515, 66.0065805322, 66.5336119791,
	67.0741886012, 67.6248048662, 68.1824983885, 68.7449797754,
	69.3106939755, 69.8788087245, 70.4491333843, 71.0219787989,
	71.5979747251, 72.1778651412, 72.7623029181, 73.3516639557,
	73.9458973537, 74.5444231502, 75.1460834067, 75.749146713,
	76.351361177, 76.9500470963, 77.5422180442, 78.1247180498,
	78.6943628205, 79.2480742632, 79.7829996318, 80.2966091048,
	80.7867681933, 81.2517838174, 81.6904249853, 82.1019206333,
	82.4859382985, 82.8425478901, 83.1721749779, 83.4755478008,
	83.7536417235, 84.0076242343, 84.2388028745, 84.448577795,
	84.6383999999, 84.809735799, 84.9640375712, 85.1027206521,
	85.2271460074, 85.3386083419, 85.4383294305, 85.527456711,
	85.607067525, 85.6781797265, 85.7417695855, 85.7987978263,
	85.850244116, 85.8971492884, 85.9406630994, 85.9820935761,
	86.022952411, 86.0649898057, 86.1102121044, 86.1608767694,
	86.2194617399, 86.2886097279, 86.3710519508, 86.4695194183,
	86.5866523745, 86.7249191789, 86.8865544625, 87.0735229452,
	87.2875104261, 87.5299381307, 87.801991918, 88.1046548394,
	88.4387308526, 88.8048492943, 89.2034436121, 89.6347030581,
	90.0985014951, 90.5943121589, 91.1211203383, 91.6773470419,
	92.2607957901, 92.8686319923, 93.4974005253, 94.1430827657,
	94.8011901, 95.4668873712, 96.1351371721, 96.800854536,
	97.4590613934, 98.1050310232, 98.7344143798, 99.3433423493,
	99.9285003811, 100.487174297, 101.017268181, 101.517296957,
	101.98635748, 102.424082676, 102.830583546, 103.206383658,
	103.552350368, 103.869626323, 104.159564077, 104.423665905,
	104.663530153, 104.88080485, 105.077148799, 105.254199938,
	105.413550496, 105.556728278, 105.685183302, 105.800279013,
	105.90328726, 105.995386341, 106.077661424, 106.151106793,
	106.21662942, 106.275053443, 106.327125239, 106.373518807,
	106.414841273, 106.45163835, 106.484399645, 106.513563735,
	106.539522957, 106.562627887, 106.583191481, 106.60149289,
	106.617780946, 106.632277336, 106.645179473, 106.656663095,
	106.6668846, 106.675983146, 106.684082532, 106.691292884,
	106.697712153, 106.703427467, 106.708516316, 106.71304763,
	106.717082717, 106.720676116, 106.723876344, 106.726726564,
	106.729265179, 106.73152636, 106.733540514, 106.735334702,
	106.73693301, 106.738356873, 106.739625376, 106.740755505,
	106.741762386, 106.742659485, 106.743458791, 106.744170982,
	106.744805567, 106.745371014, 106.745874866, 106.746323839,
	106.746723918, 106.747080432, 106.74739813, 106.747681241,
	106.747933534, 106.748158365, 106.748358727, 106.748537283,
	106.748696408, 106.748838218, 106.748964597, 106.749077226,
	106.749177601, 106.749267055, 106.749346778, 106.749417828,
	106.749481149, 106.749537582, 106.749587876, 106.749632699,
	106.749672647,
}

package quadrature

// Gauss-Kronrod abscissae and weights on [-1, 1]. Only the non-negative half
// is stored, in descending order, with the centre node last. wg holds the
// weight of the embedded Gauss rule at the same node, or 0 for nodes that
// belong to the Kronrod extension only.
var rules = map[Rule]*rule{
	GK15: {
		xgk: []float64{
			0.991455371120812639206854697526,
			0.949107912342758524526189684048,
			0.864864423359769072789712788641,
			0.741531185599394439863864773281,
			0.586087235467691130294144838259,
			0.405845151377397166906606412077,
			0.207784955007898467600689403773,
			0.0,
		},
		wgk: []float64{
			0.022935322010529224963732008059,
			0.063092092629978553290700663189,
			0.104790010322250183839876322542,
			0.14065325971552591874518959051,
			0.169004726639267902826583426599,
			0.190350578064785409913256402421,
			0.204432940075298892414161999235,
			0.209482141084727828012999174892,
		},
		wg: []float64{
			0,
			0.129484966168869693270611432679,
			0,
			0.279705391489276667901467771424,
			0,
			0.381830050505118944950369775489,
			0,
			0.417959183673469387755102040816,
		},
	},
	GK21: {
		xgk: []float64{
			0.995657163025808080735527280689,
			0.973906528517171720077964012084,
			0.93015749135570822600120718006,
			0.865063366688984510732096688423,
			0.780817726586416897063717578345,
			0.679409568299024406234327365115,
			0.562757134668604683339000099273,
			0.433395394129247190799265943166,
			0.294392862701460198131126603104,
			0.14887433898163121088482600113,
			0.0,
		},
		wgk: []float64{
			0.011694638867371874278064396062,
			0.032558162307964727478818972459,
			0.054755896574351996031381300245,
			0.075039674810919952767043140916,
			0.093125454583697605535065465083,
			0.109387158802297641899210590326,
			0.123491976262065851077958109831,
			0.134709217311473325928054001772,
			0.142775938577060080797094273139,
			0.147739104901338491374841515972,
			0.14944555400291690566493646839,
		},
		wg: []float64{
			0,
			0.066671344308688137593568809893,
			0,
			0.149451349150580593145776339658,
			0,
			0.219086362515982043995534934228,
			0,
			0.269266719309996355091226921569,
			0,
			0.295524224714752870173892994651,
			0,
		},
	},
	GK31: {
		xgk: []float64{
			0.998002298693397060285172840152,
			0.987992518020485428489565718587,
			0.967739075679139134257347978784,
			0.93727339240070590430775894771,
			0.897264532344081900882509656454,
			0.848206583410427216200648320774,
			0.790418501442465932967649294818,
			0.724417731360170047416186054614,
			0.650996741297416970533735895313,
			0.570972172608538847537226737254,
			0.485081863640239680693655740232,
			0.394151347077563369897207370981,
			0.299180007153168812166780024266,
			0.201194093997434522300628303395,
			0.101142066918717499027074231447,
			0.0,
		},
		wgk: []float64{
			0.00537747987292334898779205143,
			0.015007947329316122538374763076,
			0.02546084732671532018687400102,
			0.035346360791375846222037948478,
			0.044589751324764876608227299373,
			0.053481524690928087265343147239,
			0.062009567800670640285139230961,
			0.069854121318728258709520077099,
			0.076849680757720378894432777483,
			0.083080502823133021038289247286,
			0.088564443056211770647275443694,
			0.093126598170825321225486872747,
			0.096642726983623678505179907628,
			0.099173598721791959332393173485,
			0.100769845523875595044946662618,
			0.101330007014791549017374792767,
		},
		wg: []float64{
			0,
			0.030753241996117268354628393577,
			0,
			0.070366047488108124709267416451,
			0,
			0.107159220467171935011869546686,
			0,
			0.139570677926154314447804794511,
			0,
			0.166269205816993933553200860481,
			0,
			0.186161000015562211026800561866,
			0,
			0.198431485327111576456118326444,
			0,
			0.202578241925561272880620199968,
		},
	},
	GK41: {
		xgk: []float64{
			0.998859031588277663838315576546,
			0.993128599185094924786122388471,
			0.98150787745025025919334299472,
			0.963971927277913791267666131197,
			0.940822633831754753519982722212,
			0.912234428251325905867752441203,
			0.878276811252281976077442995113,
			0.839116971822218823394529061702,
			0.795041428837551198350638833273,
			0.746331906460150792614305070356,
			0.693237656334751384805490711846,
			0.636053680726515025452836696226,
			0.575140446819710315342946036586,
			0.510867001950827098004364050955,
			0.443593175238725103199992213493,
			0.373706088715419560672548177025,
			0.301627868114913004320555356859,
			0.227785851141645078080496195369,
			0.152605465240922675505220241023,
			0.076526521133497333754640409399,
			0.0,
		},
		wgk: []float64{
			0.003073583718520531501218293246,
			0.00860026985564294219866178795,
			0.014626169256971252983787960309,
			0.020388373461266523598010231433,
			0.025882133604951158834505067096,
			0.031287306777032798958543119324,
			0.036600169758200798030557240707,
			0.041668873327973686263788305937,
			0.046434821867497674720231880926,
			0.05094457392372869193270767005,
			0.05519510534828599474483237242,
			0.059111400880639572374967220649,
			0.062653237554781168025870122174,
			0.065834597133618422111563556969,
			0.068648672928521619345623411885,
			0.071054423553444068305790361723,
			0.073030690332786667495189417659,
			0.074582875400499188986581418362,
			0.075704497684556674659542775377,
			0.076377867672080736705502835038,
			0.07660071191799965644504990153,
		},
		wg: []float64{
			0,
			0.017614007139152118311861962352,
			0,
			0.040601429800386941331039952275,
			0,
			0.062672048334109063569506535187,
			0,
			0.083276741576704748724758143222,
			0,
			0.10193011981724043503675013548,
			0,
			0.118194531961518417312377377711,
			0,
			0.131688638449176626898494499748,
			0,
			0.142096109318382051329298325067,
			0,
			0.149172986472603746787828737002,
			0,
			0.152753387130725850698084331955,
			0,
		},
	},
	GK51: {
		xgk: []float64{
			0.99926210499260983419345748654,
			0.995556969790498097908784946894,
			0.988035794534077247637331014577,
			0.97666392145951751149831538648,
			0.96161498642584251241813003366,
			0.942974571228974339414011169658,
			0.920747115281701561746346084546,
			0.894991997878275368851042006783,
			0.865847065293275595448996969588,
			0.833442628760834001421021108694,
			0.797873797998500059410410904994,
			0.759259263037357630577282865204,
			0.717766406813084388186654079773,
			0.673566368473468364485120633248,
			0.626810099010317412788122681625,
			0.577662930241222967723689841613,
			0.526325284334719182599623778158,
			0.473002731445714960522182115009,
			0.417885382193037748851814394595,
			0.361172305809387837735821730128,
			0.30308953893110783016747890998,
			0.243866883720988432045190362797,
			0.18371893942104889201596988876,
			0.122864692610710396387359818808,
			0.061544483005685078886546392367,
			0.0,
		},
		wgk: []float64{
			0.001987383892330315926507851883,
			0.005561932135356713758040236901,
			0.009473973386174151607207710524,
			0.013236229195571674813656405847,
			0.016847817709128298231516667536,
			0.020435371145882835456568292236,
			0.024009945606953216220092489165,
			0.027475317587851737802948455518,
			0.030792300167387488891109020215,
			0.03400213027432933783674879523,
			0.037116271483415543560330625368,
			0.040083825504032382074839284467,
			0.042872845020170049476895792439,
			0.045502913049921788909870584753,
			0.047982537138836713906392255757,
			0.050277679080715671963325259433,
			0.052362885806407475864366712138,
			0.05425112988854549014454337046,
			0.055950811220412317308240686383,
			0.05743711636156783285358269394,
			0.058689680022394207961974175857,
			0.059720340324174059979099291933,
			0.060539455376045862945360267518,
			0.061128509717053048305859030416,
			0.061471189871425316661544131965,
			0.06158081806783293507875982424,
		},
		wg: []float64{
			0,
			0.011393798501026287947902964113,
			0,
			0.026354986615032137261901815295,
			0,
			0.040939156701306312655623487712,
			0,
			0.05490469597583519192593689154,
			0,
			0.068038333812356917207187185657,
			0,
			0.080140700335001018013234959669,
			0,
			0.091028261982963649811497220703,
			0,
			0.100535949067050644202206890393,
			0,
			0.10851962447426365311609395705,
			0,
			0.11485825914571164833932554587,
			0,
			0.119455763535784772228178126513,
			0,
			0.122242442990310041688959518946,
			0,
			0.123176053726715451203902873079,
		},
	},
	GK61: {
		xgk: []float64{
			0.999484410050490637571325895706,
			0.996893484074649540271630050919,
			0.991630996870404594858628366109,
			0.983668123279747209970032581606,
			0.973116322501126268374693868424,
			0.960021864968307512216871025582,
			0.944374444748559979415831324037,
			0.92620004742927432587932427708,
			0.905573307699907798546522558926,
			0.88256053579205268154311646253,
			0.857205233546061098958658510659,
			0.829565762382768397442898119733,
			0.799727835821839083013668942323,
			0.767777432104826194917977340975,
			0.73379006245322680472617113137,
			0.697850494793315796932292388027,
			0.660061064126626961370053668149,
			0.620526182989242861140477556431,
			0.579345235826361691756024932173,
			0.536624148142019899264169793311,
			0.492480467861778574993693061208,
			0.447033769538089176780609900323,
			0.400401254830394392535476211543,
			0.352704725530878113471037207089,
			0.304073202273625077372677107199,
			0.254636926167889846439805129818,
			0.204525116682309891438957671002,
			0.153869913608583546963794672743,
			0.102806937966737030147096751318,
			0.051471842555317695833025213167,
			0.0,
		},
		wgk: []float64{
			0.001389013698677007624551591227,
			0.003890461127099884051267201845,
			0.00663070391593129217331982637,
			0.009273279659517763428441146892,
			0.011823015253496341742232898853,
			0.014369729507045804812451432444,
			0.01692088918905327262757228942,
			0.01941414119394238117340895105,
			0.021828035821609192297167485738,
			0.024191162078080601365686370725,
			0.026509954882333101610601709335,
			0.028754048765041292843978785354,
			0.030907257562387762472884252943,
			0.032981447057483726031814191017,
			0.034979338028060024137499670731,
			0.036882364651821229223911065617,
			0.038678945624727592950348651532,
			0.040374538951535959111995279752,
			0.041969810215164246147147541286,
			0.043452539701356069316831728117,
			0.044814800133162663192355551617,
			0.046059238271006988116271735559,
			0.047185546569299153945261478181,
			0.048185861757087129140779492298,
			0.049055434555029778887528165367,
			0.04979568342707420635781156938,
			0.050405921402782346840893085654,
			0.05088179589874960649229747305,
			0.051221547849258772170656282605,
			0.051426128537459025933862879216,
			0.051494729429451567558340433647,
		},
		wg: []float64{
			0,
			0.007968192496166605615465883475,
			0,
			0.018466468311090959142302131912,
			0,
			0.028784707883323369349719179611,
			0,
			0.038799192569627049596801936446,
			0,
			0.048402672830594052902938140423,
			0,
			0.057493156217619066481721689402,
			0,
			0.065974229882180495128128515116,
			0,
			0.073755974737705206268243850022,
			0,
			0.080755895229420215354694938461,
			0,
			0.086899787201082979802387530715,
			0,
			0.092122522237786128717632707088,
			0,
			0.096368737174644259639468626352,
			0,
			0.099593420586795267062780282104,
			0,
			0.101762389748405504596428952169,
			0,
			0.102852652893558840341285636705,
			0,
		},
	},
}

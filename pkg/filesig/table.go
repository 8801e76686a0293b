package filesig

// signatureTable is the built-in signature data, grouped by format name.
// Order here is irrelevant for matching; the registry re-sorts it.
var signatureTable = []Signature{
	{pattern: "4F50434C444154", offset: 0, extensions: []string{"attachment"}, description: "1Password 4 Cloud Keychain"},
	{pattern: "0000001466747970", offset: 0, extensions: []string{"3GG", "3GP", "3G2"}, description: "3rd Generation Partnership Project 3GPP"},
	{pattern: "0000002066747970", offset: 0, extensions: []string{"3GG", "3GP", "3G2"}, description: "3GPP2 multimedia files"},
	{pattern: "377ABCAF271C", offset: 0, extensions: []string{"7Z"}, description: "7-Zip compressed file"},
	{pattern: "A90D000000000000", offset: 0, extensions: []string{"DAT"}, description: "Access Data FTK evidence"},
	{pattern: "B46E6844", offset: 0, extensions: []string{"TIB"}, description: "Acronis True Image"},
	{pattern: "2321414D52", offset: 0, extensions: []string{"AMR"}, description: "Adaptive Multi-Rate ACELP Codec (GSM)"},
	{pattern: "C5D0D3C6", offset: 0, extensions: []string{"EPS"}, description: "Adobe encapsulated PostScript"},
	{pattern: "3C4D616B65724669", offset: 0, extensions: []string{"FM", "MIF"}, description: "Adobe FrameMaker"},
	{pattern: "3C", offset: 0, extensions: []string{"ASX", "XDR"}, description: "Advanced Stream Redirector"},
	{pattern: "4E616D653A20", offset: 0, extensions: []string{"COD"}, description: "Agent newsreader character map"},
	{pattern: "2112", offset: 0, extensions: []string{"AIN"}, description: "AIN Compressed Archive"},
	{pattern: "736C6821", offset: 0, extensions: []string{"DAT"}, description: "Allegro Generic Packfile (compressed)"},
	{pattern: "736C682E", offset: 0, extensions: []string{"DAT"}, description: "Allegro Generic Packfile (uncompressed)"},
	{pattern: "444F53", offset: 0, extensions: []string{"ADF"}, description: "Amiga disk file"},
	{pattern: "444D5321", offset: 0, extensions: []string{"DMS"}, description: "Amiga DiskMasher compressed archive"},
	{pattern: "E310000100000000", offset: 0, extensions: []string{"INFO"}, description: "Amiga icon"},
	{pattern: "5245564E554D3A2C", offset: 0, extensions: []string{"AD"}, description: "Antenna data file"},
	{pattern: "414F4C4442", offset: 0, extensions: []string{"ABY", "IDX"}, description: "AOL user configuration"},
	{pattern: "414F4C494E444558", offset: 0, extensions: []string{"ABI"}, description: "AOL address book index"},
	{pattern: "414F4C2046656564", offset: 0, extensions: []string{"BAG"}, description: "AOL and AIM buddy list"},
	{pattern: "4A47030E", offset: 0, extensions: []string{"JG"}, description: "AOL ART file_1"},
	{pattern: "4A47040E", offset: 0, extensions: []string{"JG"}, description: "AOL ART file_2"},
	{pattern: "414F4C494458", offset: 0, extensions: []string{"IND"}, description: "AOL client preferences|settings file"},
	{pattern: "414F4C", offset: 0, extensions: []string{"ABI", "ABY", "BAG", "IDX", "IND", "PFC"}, description: "AOL config files"},
	{pattern: "D42A", offset: 0, extensions: []string{"ARL", "AUT"}, description: "AOL history|typed URL files"},
	{pattern: "3C21646F63747970", offset: 0, extensions: []string{"DCI"}, description: "AOL HTML mail"},
	{pattern: "414F4C564D313030", offset: 0, extensions: []string{"ORG", "PFC"}, description: "AOL personal file cabinet"},
	{pattern: "00000020667479704D3441", offset: 0, extensions: []string{"M4A"}, description: "Apple audio and video"},
	{pattern: "63616666", offset: 0, extensions: []string{"CAF"}, description: "Apple Core Audio File"},
	{pattern: "667479704D344120", offset: 4, extensions: []string{"M4A"}, description: "Apple Lossless Audio Codec file"},
	{pattern: "0300000041505052", offset: 0, extensions: []string{"ADX"}, description: "Approach index file"},
	{pattern: "646E732E", offset: 0, extensions: []string{"AU"}, description: "Audacity audio file"},
	{pattern: "464F524D00", offset: 0, extensions: []string{"AIFF", "DAX"}, description: "DAKX Compressed Audio"},
	{pattern: "4D5A900003000000", offset: 0, extensions: []string{"FLT", "API", "AX"}, description: "DirectShow filter"},
	{pattern: "415647365F496E74", offset: 0, extensions: []string{"DAT"}, description: "AVG6 Integrity database"},
	{pattern: "3C7E363C5C255F30675371683B", offset: 0, extensions: []string{"B85"}, description: "BASE85 file"},
	{pattern: "425047FB", offset: 0, extensions: []string{"BPG"}, description: "Better Portable Graphics"},
	{pattern: "ACED000573720012", offset: 0, extensions: []string{"PDB"}, description: "BGBlitz position database file"},
	{pattern: "2854686973206669", offset: 0, extensions: []string{"HQX"}, description: "BinHex 4 Compressed Archive"},
	{pattern: "000000006231050009000000002000", offset: 8, extensions: []string{"DAT"}, description: "Bitcoin Core wallet.dat file"},
	{pattern: "F9BEB4D9", offset: 0, extensions: []string{"DAT"}, description: "Bitcoin-Qt blockchain block file"},
	{pattern: "424D", offset: 0, extensions: []string{"BMP", "DIB"}, description: "Bitmap image"},
	{pattern: "426C696E6B", offset: 0, extensions: []string{"BLI"}, description: "Blink compressed archive"},
	{pattern: "2350454330303031", offset: 0, extensions: []string{"PEC"}, description: "Brother-Babylock-Bernina Home Embroidery"},
	{pattern: "2350455330", offset: 0, extensions: []string{"PES"}, description: "Brother-Babylock-Bernina Home Embroidery"},
	{pattern: "425A68", offset: 0, extensions: []string{"BZ2", "TAR.BZ2", "TBZ2", "TB2"}, description: "bzip2 compressed archive"},
	{pattern: "43616C63756C757820496E646F6F7220", offset: 0, extensions: []string{"CIN"}, description: "Calculux Indoor lighting project file"},
	{pattern: "737263646F636964", offset: 0, extensions: []string{"CAL"}, description: "CALS raster bitmap"},
	{pattern: "49491A0000004845", offset: 0, extensions: []string{"CRW"}, description: "Canon RAW file"},
	{pattern: "4D56", offset: 0, extensions: []string{"DSN"}, description: "CD Stomper Pro label file"},
	{pattern: "2320", offset: 0, extensions: []string{"MSI"}, description: "Cerius2 file"},
	{pattern: "504943540008", offset: 0, extensions: []string{"IMG"}, description: "ChromaGraph Graphics Card Bitmap"},
	{pattern: "434F4D2B", offset: 0, extensions: []string{"CLB"}, description: "COM+ Catalog"},
	{pattern: "60EA", offset: 0, extensions: []string{"ARJ"}, description: "Compressed archive file"},
	{pattern: "1A0B", offset: 0, extensions: []string{"PAK"}, description: "Compressed archive file"},
	{pattern: "2D6C68", offset: 2, extensions: []string{"LHA", "LZH"}, description: "Compressed archive"},
	{pattern: "4349534F", offset: 0, extensions: []string{"CSO"}, description: "Compressed ISO CD image"},
	{pattern: "1F9D90", offset: 0, extensions: []string{"TAR.Z"}, description: "Compressed tape archive_1"},
	{pattern: "1FA0", offset: 0, extensions: []string{"TAR.Z"}, description: "Compressed tape archive_2"},
	{pattern: "00000000000000000000000000000000", offset: 0, extensions: []string{"XXX"}, description: "Compucon-Singer embroidery design file"},
	{pattern: "434D5831", offset: 0, extensions: []string{"CLB"}, description: "Corel Binary metafile"},
	{pattern: "DCDC", offset: 0, extensions: []string{"CPL"}, description: "Corel color palette"},
	{pattern: "7E424B00", offset: 0, extensions: []string{"PSP"}, description: "Corel Paint Shop Pro image"},
	{pattern: "4350543746494C45", offset: 0, extensions: []string{"CPT"}, description: "Corel Photopaint file_1"},
	{pattern: "43505446494C45", offset: 0, extensions: []string{"CPT"}, description: "Corel Photopaint file_2"},
	{pattern: "437265617469766520566F6963652046", offset: 0, extensions: []string{"VOC"}, description: "Creative Voice"},
	{pattern: "43525553482076", offset: 0, extensions: []string{"CRU"}, description: "Crush compressed archive"},
	{pattern: "3C43736F756E6453796E74686573697A", offset: 0, extensions: []string{"CSD"}, description: "Csound music"},
	{pattern: "6465780A", offset: 0, extensions: []string{"dex"}, description: "Dalvik (Android) executable file"},
	{pattern: "44415800", offset: 0, extensions: []string{"DAX"}, description: "DAX Compressed CD image"},
	{pattern: "53514C4F434F4E56", offset: 0, extensions: []string{"CNV"}, description: "DB2 conversion file"},
	{pattern: "03", offset: 0, extensions: []string{"DB3", "DAT"}, description: "MapInfo Native Data Format"},
	{pattern: "04", offset: 0, extensions: []string{"DB4"}, description: "dBASE IV file"},
	{pattern: "08", offset: 0, extensions: []string{"DB"}, description: "dBASE IV or dBFast configuration file"},
	{pattern: "0764743264647464", offset: 0, extensions: []string{"DTD"}, description: "DesignTools 2D Design file"},
	{pattern: "0D444F43", offset: 0, extensions: []string{"DOC"}, description: "DeskMate Document"},
	{pattern: "0E574B53", offset: 0, extensions: []string{"WKS"}, description: "DeskMate Worksheet"},
	{pattern: "FDFFFFFF20", offset: 512, extensions: []string{"OPT"}, description: "Developer Studio subheader"},
	{pattern: "5B50686F6E655D", offset: 0, extensions: []string{"DUN"}, description: "Dial-up networking file"},
	{pattern: "02647373", offset: 0, extensions: []string{"DSS"}, description: "Digital Speech Standard file"},
	{pattern: "7E742C015070024D52", offset: 0, extensions: []string{"IMG"}, description: "Digital Watchdog DW-TP-500G audio"},
	{pattern: "FFFFFFFF", offset: 0, extensions: []string{"SYS"}, description: "DOS system driver"},
	{pattern: "80000020031204", offset: 0, extensions: []string{"ADX"}, description: "Dreamcast audio"},
	{pattern: "44535462", offset: 0, extensions: []string{"DST"}, description: "DST Compression"},
	{pattern: "000001BA", offset: 0, extensions: []string{"MPG", "VOB"}, description: "DVD video file"},
	{pattern: "445644", offset: 0, extensions: []string{"IFO", "DVR"}, description: "DVR-Studio stream file"},
	{pattern: "10000000", offset: 0, extensions: []string{"CL5"}, description: "Easy CD Creator 5 Layout file"},
	{pattern: "4552465353415645", offset: 0, extensions: []string{"DAT"}, description: "EasyRecovery Saved State file"},
	{pattern: "DCFE", offset: 0, extensions: []string{"EFX"}, description: "eFax file"},
	{pattern: "454C49544520436F", offset: 0, extensions: []string{"CDR"}, description: "Elite Plus Commander game file"},
	{pattern: "252150532D41646F", offset: 0, extensions: []string{"EPS"}, description: "Encapsulated PostScript file"},
	{pattern: "5F434153455F", offset: 0, extensions: []string{"CAS", "CBK"}, description: "EnCase case file"},
	{pattern: "455646320D0A81", offset: 0, extensions: []string{"Ex01"}, description: "EnCase Evidence File Format V2"},
	{pattern: "40404020000040404040", offset: 32, extensions: []string{"ENL"}, description: "EndNote Library File"},
	{pattern: "0908100000060500", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_1"},
	{pattern: "FDFFFFFF10", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_2"},
	{pattern: "FDFFFFFF1F", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_3"},
	{pattern: "FDFFFFFF22", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_4"},
	{pattern: "FDFFFFFF23", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_5"},
	{pattern: "FDFFFFFF28", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_6"},
	{pattern: "FDFFFFFF29", offset: 512, extensions: []string{"XLS"}, description: "Excel spreadsheet subheader_7"},
	{pattern: "582D", offset: 0, extensions: []string{"EML"}, description: "Exchange e-mail"},
	{pattern: "455646090D0AFF00", offset: 0, extensions: []string{"E01"}, description: "Expert Witness Compression Format"},
	{pattern: "78617221", offset: 0, extensions: []string{"XAR"}, description: "eXtensible ARchive file"},
	{pattern: "4644424800", offset: 0, extensions: []string{"FDB"}, description: "Fiasco database definition file"},
	{pattern: "01003930", offset: 0, extensions: []string{"FDB", "GDB"}, description: "Firebird and Interbase database files"},
	{pattern: "464C56", offset: 0, extensions: []string{"FLV"}, description: "Flash video file"},
	{pattern: "53494D504C4520203D202020202020", offset: 0, extensions: []string{"FITS"}, description: "Flexible Image Transport System (FITS) file"},
	{pattern: "0011", offset: 0, extensions: []string{"FLI"}, description: "FLIC animation"},
	{pattern: "5B666C7473696D2E", offset: 0, extensions: []string{"CFG"}, description: "Flight Simulator Aircraft Configuration"},
	{pattern: "664C614300000022", offset: 0, extensions: []string{"FLAC"}, description: "Free Lossless Audio Codec file"},
	{pattern: "41724301", offset: 0, extensions: []string{"ARC"}, description: "FreeArc compressed file"},
	{pattern: "256269746D6170", offset: 0, extensions: []string{"FBM"}, description: "Fuzzy bitmap (FBM) file"},
	{pattern: "EB3C902A", offset: 0, extensions: []string{"IMG"}, description: "GEM Raster file"},
	{pattern: "41433130", offset: 0, extensions: []string{"DWG"}, description: "Generic AutoCAD drawing"},
	{pattern: "07", offset: 0, extensions: []string{"DRW"}, description: "Generic drawing programs"},
	{pattern: "52657475726E2D50", offset: 0, extensions: []string{"EML"}, description: "Generic e-mail_1"},
	{pattern: "46726F6D", offset: 0, extensions: []string{"EML"}, description: "Generic e-mail_2"},
	{pattern: "47656E65746563204F6D6E6963617374", offset: 0, extensions: []string{"G64"}, description: "Genetec video archive"},
	{pattern: "47494638", offset: 0, extensions: []string{"GIF"}, description: "GIF file"},
	{pattern: "67696D7020786366", offset: 0, extensions: []string{"XCF"}, description: "GIMP file"},
	{pattern: "47504154", offset: 0, extensions: []string{"PAT"}, description: "GIMP pattern file"},
	{pattern: "5468697320697320", offset: 0, extensions: []string{"INFO"}, description: "GNU Info Reader file"},
	{pattern: "99", offset: 0, extensions: []string{"GPG"}, description: "GPG public keyring"},
	{pattern: "3C6770782076657273696F6E3D22312E", offset: 0, extensions: []string{"GPX"}, description: "GPS Exchange (v1.1)"},
	{pattern: "91334846", offset: 0, extensions: []string{"HAP"}, description: "Hamarsoft compressed archive"},
	{pattern: "4848474231", offset: 0, extensions: []string{"SH3"}, description: "Harvard Graphics presentation file"},
	{pattern: "53484F57", offset: 0, extensions: []string{"SHW"}, description: "Harvard Graphics presentation"},
	{pattern: "414D594F", offset: 0, extensions: []string{"SYW"}, description: "Harvard Graphics symbol graphic"},
	{pattern: "5DFCC800", offset: 0, extensions: []string{"HUS"}, description: "Husqvarna Designer"},
	{pattern: "436C69656E742055", offset: 0, extensions: []string{"DAT"}, description: "IE History file"},
	{pattern: "53434D49", offset: 0, extensions: []string{"IMG"}, description: "Img Software Bitmap"},
	{pattern: "496E6E6F20536574", offset: 0, extensions: []string{"DAT"}, description: "Inno Setup Uninstall Log"},
	{pattern: "49536328", offset: 0, extensions: []string{"CAB", "HDR"}, description: "Install Shield compressed file"},
	{pattern: "64000000", offset: 0, extensions: []string{"P10"}, description: "Intel PROset|Wireless Profile"},
	{pattern: "496E7465724063746976652050616765", offset: 0, extensions: []string{"IPD"}, description: "Inter@ctive Pager Backup (BlackBerry file"},
	{pattern: "6674797069736F6D", offset: 4, extensions: []string{"MP4"}, description: "ISO Base Media file (MPEG-4) v1"},
	{pattern: "4344303031", offset: 0, extensions: []string{"ISO"}, description: "ISO-9660 CD Disc Image"},
	{pattern: "5F27A889", offset: 0, extensions: []string{"JAR"}, description: "Jar archive"},
	{pattern: "4A4152435300", offset: 0, extensions: []string{"JAR"}, description: "JARCS compressed archive"},
	{pattern: "504B030414000800", offset: 0, extensions: []string{"JAR"}, description: "Java archive_2"},
	{pattern: "CAFEBABE", offset: 0, extensions: []string{"CLASS"}, description: "Java bytecode"},
	{pattern: "CECECECE", offset: 0, extensions: []string{"JCEKS"}, description: "Java Cryptography Extension keystore"},
	{pattern: "974A42320D0A1A0A", offset: 0, extensions: []string{"JB2"}, description: "JBOG2 image file"},
	{pattern: "C8007900", offset: 0, extensions: []string{"LBK"}, description: "Jeppesen FliteLog file"},
	{pattern: "0000000C6A502020", offset: 0, extensions: []string{"JP2"}, description: "JPEG2000 image files"},
	{pattern: "FFD8FF", offset: 0, extensions: []string{"JFIF", "JPE", "JPEG", "JPG"}, description: "JPEG|EXIF|SPIFF images"},
	{pattern: "FF4B455942202020", offset: 0, extensions: []string{"SYS"}, description: "Keyboard driver file"},
	{pattern: "4B47425F61726368", offset: 0, extensions: []string{"KGB"}, description: "KGB archive"},
	{pattern: "802A5FD7", offset: 0, extensions: []string{"CIN"}, description: "Kodak Cineon image"},
	{pattern: "1A02", offset: 0, extensions: []string{"ARC"}, description: "LH archive (old vers.|type 1)"},
	{pattern: "1A03", offset: 0, extensions: []string{"ARC"}, description: "LH archive (old vers.|type 2)"},
	{pattern: "1A04", offset: 0, extensions: []string{"ARC"}, description: "LH archive (old vers.|type 3)"},
	{pattern: "1A08", offset: 0, extensions: []string{"ARC"}, description: "LH archive (old vers.|type 4)"},
	{pattern: "1A09", offset: 0, extensions: []string{"ARC"}, description: "LH archive (old vers.|type 5)"},
	{pattern: "4C5646090D0AFF00", offset: 0, extensions: []string{"E01"}, description: "Logical File Evidence Format"},
	{pattern: "0000020006040600", offset: 0, extensions: []string{"WK1"}, description: "Lotus 1-2-3 (v1)"},
	{pattern: "00001A0000100400", offset: 0, extensions: []string{"WK3"}, description: "Lotus 1-2-3 (v3)"},
	{pattern: "00001A0002100400", offset: 0, extensions: []string{"WK4", "WK5"}, description: "Lotus 1-2-3 (v4|v5)"},
	{pattern: "00001A00051004", offset: 0, extensions: []string{"123"}, description: "Lotus 1-2-3 (v9)"},
	{pattern: "5B5645525D", offset: 0, extensions: []string{"SAM"}, description: "Lotus AMI Pro document_1"},
	{pattern: "5B7665725D", offset: 0, extensions: []string{"SAM"}, description: "Lotus AMI Pro document_2"},
	{pattern: "1A0000040000", offset: 0, extensions: []string{"NSF"}, description: "Lotus Notes database"},
	{pattern: "1A0000", offset: 0, extensions: []string{"NTF"}, description: "Lotus Notes database template"},
	{pattern: "576F726450726F", offset: 0, extensions: []string{"LWP"}, description: "Lotus WordPro file"},
	{pattern: "7801730D626260", offset: 0, extensions: []string{"DMG"}, description: "MacOS X image file"},
	{pattern: "5A5753", offset: 0, extensions: []string{"SWF"}, description: "Macromedia Shockwave Flash"},
	{pattern: "56657273696F6E20", offset: 0, extensions: []string{"MIF"}, description: "MapInfo Interchange Format file"},
	{pattern: "21", offset: 0, extensions: []string{"BSB"}, description: "MapInfo Sea Chart"},
	{pattern: "4D41723000", offset: 0, extensions: []string{"MAR"}, description: "MAr compressed archive"},
	{pattern: "1A45DFA393428288", offset: 0, extensions: []string{"MKV"}, description: "Matroska stream file"},
	{pattern: "4D2D5720506F636B", offset: 0, extensions: []string{"PDB"}, description: "Merriam-Webster Pocket Dictionary"},
	{pattern: "01FF02040302", offset: 0, extensions: []string{"DRW"}, description: "Micrografx vector graphic file"},
	{pattern: "000100005374616E6461726420414345204442", offset: 0, extensions: []string{"ACCDB"}, description: "Microsoft Access 2007"},
	{pattern: "000100005374616E64617264204A6574204442", offset: 0, extensions: []string{"MDB"}, description: "Microsoft Access"},
	{pattern: "4D534346", offset: 0, extensions: []string{"CAB", "SNP", "PPZ"}, description: "Powerpoint Packaged Presentation"},
	{pattern: "5B57696E646F7773", offset: 0, extensions: []string{"CPX"}, description: "Microsoft Code Page Translation file"},
	{pattern: "000100004D534953414D204461746162617365", offset: 0, extensions: []string{"MNY"}, description: "Microsoft Money file"},
	{pattern: "D0CF11E0A1B11AE1", offset: 0, extensions: []string{"DOC", "DOT", "PPS", "PPT", "XLA", "XLS", "WIZ", "MSI", "MSC", "MTW", "APR", "OPT", "AC_", "ADP", "SOU", "VSD", "SPO", "RVT", "PUB", "DB", "WPS"}, description: "Microsoft Office|OLE2 compound document"},
	{pattern: "2142444E", offset: 0, extensions: []string{"OST"}, description: "Microsoft Outlook Exchange Offline Storage Folder"},
	{pattern: "4D5357494D", offset: 0, extensions: []string{"WIM"}, description: "Microsoft Windows Imaging Format"},
	{pattern: "504D4F43434D4F43", offset: 0, extensions: []string{"PMOCCMOC"}, description: "Microsoft Windows User State Migration Tool"},
	{pattern: "4D415243", offset: 0, extensions: []string{"MAR"}, description: "Microsoft|MSN MARC archive"},
	{pattern: "4D546864", offset: 0, extensions: []string{"MID", "MIDI", "PCS"}, description: "Yamaha Piano"},
	{pattern: "4D494C4553", offset: 0, extensions: []string{"MLS"}, description: "Milestones project management file"},
	{pattern: "4D56323134", offset: 0, extensions: []string{"MLS"}, description: "Milestones project management file_1"},
	{pattern: "4D563243", offset: 0, extensions: []string{"MLS"}, description: "Milestones project management file_2"},
	{pattern: "0CED", offset: 0, extensions: []string{"MP"}, description: "Monochrome Picture TIFF bitmap"},
	{pattern: "4D41523100", offset: 0, extensions: []string{"MAR"}, description: "Mozilla archive"},
	{pattern: "494433", offset: 0, extensions: []string{"MP3"}, description: "MP3 audio file"},
	{pattern: "000001B3", offset: 0, extensions: []string{"MPG"}, description: "MPEG video file"},
	{pattern: "FFF9", offset: 0, extensions: []string{"AAC"}, description: "MPEG-2 AAC audio"},
	{pattern: "FFF1", offset: 0, extensions: []string{"AAC"}, description: "MPEG-4 AAC audio"},
	{pattern: "000000146674797069736F6D", offset: 0, extensions: []string{"MP4"}, description: "MPEG-4 v1"},
	{pattern: "6674797033677035", offset: 4, extensions: []string{"MP4"}, description: "MPEG-4 video file_1"},
	{pattern: "667479704D534E56", offset: 4, extensions: []string{"MP4"}, description: "MPEG-4 video file_2"},
	{pattern: "0000001866747970", offset: 0, extensions: []string{"3GP5", "M4V", "MP4"}, description: "MPEG-4 video_1"},
	{pattern: "0000001C66747970", offset: 0, extensions: []string{"MP4"}, description: "MPEG-4 video_2"},
	{pattern: "667479706D703432", offset: 4, extensions: []string{"M4V"}, description: "MPEG-4 video|QuickTime file"},
	{pattern: "C3ABCDAB", offset: 0, extensions: []string{"ACS"}, description: "MS Agent Character file"},
	{pattern: "8A0109000000E108", offset: 0, extensions: []string{"AW"}, description: "MS Answer Wizard"},
	{pattern: "4D6963726F736F667420432F432B2B20", offset: 0, extensions: []string{"PDB"}, description: "MS C++ debugging symbols file"},
	{pattern: "4C01", offset: 0, extensions: []string{"OBJ"}, description: "MS COFF relocatable object code"},
	{pattern: "49545346", offset: 0, extensions: []string{"CHI", "CHM"}, description: "MS Compiled HTML Help File"},
	{pattern: "23204D6963726F73", offset: 0, extensions: []string{"DSP"}, description: "MS Developer Studio project file"},
	{pattern: "4550", offset: 0, extensions: []string{"MDI"}, description: "MS Document Imaging file"},
	{pattern: "5B47656E6572616C", offset: 0, extensions: []string{"ECF"}, description: "MS Exchange configuration file"},
	{pattern: "464158434F564552", offset: 0, extensions: []string{"CPE"}, description: "MS Fax Cover Sheet"},
	{pattern: "504B030414000600", offset: 0, extensions: []string{"DOCX", "PPTX", "XLSX"}, description: "MS Office 2007 documents"},
	{pattern: "504B0304", offset: 0, extensions: []string{"DOCX", "PPTX", "XLSX", "ODT", "ODP", "OTT", "SXC", "SXD", "SXI", "SXW", "ZIP", "XPI", "KWD", "JAR", "KMZ", "XPT", "XPS", "WMZ"}, description: "PKZIP archive_1"},
	{pattern: "E4525C7B8CD8A74D", offset: 0, extensions: []string{"ONE"}, description: "MS OneNote note"},
	{pattern: "5854", offset: 0, extensions: []string{"BDR"}, description: "MS Publisher"},
	{pattern: "FDFFFFFF02", offset: 512, extensions: []string{"PUB"}, description: "MS Publisher file subheader"},
	{pattern: "FD377A585A00", offset: 512, extensions: []string{"PUB"}, description: "MS Publisher subheader"},
	{pattern: "49544F4C49544C53", offset: 0, extensions: []string{"LIT"}, description: "MS Reader eBook"},
	{pattern: "30", offset: 0, extensions: []string{"CAT"}, description: "MS security catalog file"},
	{pattern: "64737766696C65", offset: 0, extensions: []string{"DSW"}, description: "MS Visual Studio workspace file"},
	{pattern: "4E422A00", offset: 0, extensions: []string{"JNT", "JTP"}, description: "MS Windows journal"},
	{pattern: "7B5C707769", offset: 0, extensions: []string{"PWI"}, description: "MS WinMobile personal note"},
	{pattern: "31BE", offset: 0, extensions: []string{"WRI"}, description: "MS Write file_1"},
	{pattern: "32BE", offset: 0, extensions: []string{"WRI"}, description: "MS Write file_2"},
	{pattern: "BE000000AB", offset: 0, extensions: []string{"WRI"}, description: "MS Write file_3"},
	{pattern: "FFFE23006C006900", offset: 0, extensions: []string{"MOF"}, description: "MSinfo file"},
	{pattern: "53505642", offset: 0, extensions: []string{"SPVB"}, description: "MultiBit Bitcoin blockchain file"},
	{pattern: "0A166F72672E626974636F696E2E7072", offset: 0, extensions: []string{"WALLET"}, description: "MultiBit Bitcoin wallet file"},
	{pattern: "6D756C74694269742E696E666F", offset: 0, extensions: []string{"INFO"}, description: "MultiBit Bitcoin wallet information"},
	{pattern: "4E49544630", offset: 0, extensions: []string{"NTF"}, description: "National Imagery Transmission Format file"},
	{pattern: "30314F52444E414E", offset: 0, extensions: []string{"NTF"}, description: "National Transfer Format Map"},
	{pattern: "0E4E65726F49534F", offset: 0, extensions: []string{"NRI"}, description: "Nero CD compilation"},
	{pattern: "4E45534D1A01", offset: 0, extensions: []string{"NSF"}, description: "NES Sound file"},
	{pattern: "001E849000000000", offset: 0, extensions: []string{"SNM"}, description: "Netscape Communicator (v4) mail folder"},
	{pattern: "0006156100000002000004D200001000", offset: 0, extensions: []string{"DB"}, description: "Netscape Navigator (v4) database"},
	{pattern: "2E736E64", offset: 0, extensions: []string{"AU"}, description: "NeXT|Sun Microsystems audio file"},
	{pattern: "504E4349554E444F", offset: 0, extensions: []string{"DAT"}, description: "Norton Disk Doctor undo file"},
	{pattern: "0110", offset: 0, extensions: []string{"TR1"}, description: "Novell LANalyzer capture file"},
	{pattern: "4F67675300020000", offset: 0, extensions: []string{"OGA", "OGG", "OGV", "OGX"}, description: "Ogg Vorbis Codec compressed file"},
	{pattern: "4D53465402000100", offset: 0, extensions: []string{"TLB"}, description: "OLE|SPSS|Visual C++ library file"},
	{pattern: "504B03040A000200", offset: 0, extensions: []string{"EPUB"}, description: "Open Publication Structure eBook"},
	{pattern: "762F3101", offset: 0, extensions: []string{"EXR"}, description: "OpenEXR bitmap image"},
	{pattern: "9CCBCB8D1375D211", offset: 0, extensions: []string{"WAB"}, description: "Outlook address file"},
	{pattern: "813284C18505D011", offset: 0, extensions: []string{"WAB"}, description: "Outlook Express address book (Win95)"},
	{pattern: "CFAD12FE", offset: 0, extensions: []string{"DBX"}, description: "Outlook Express e-mail folder"},
	{pattern: "58435000", offset: 0, extensions: []string{"CAP"}, description: "Packet sniffer files"},
	{pattern: "00014241", offset: 0, extensions: []string{"ABA"}, description: "Palm Address Book Archive"},
	{pattern: "00014244", offset: 0, extensions: []string{"DBA"}, description: "Palm DateBook Archive"},
	{pattern: "BEBAFECA0F50616C6D53472044617461", offset: 0, extensions: []string{"DAT"}, description: "Palm Desktop DateBook"},
	{pattern: "44424648", offset: 0, extensions: []string{"DB"}, description: "Palm Zire photo database"},
	{pattern: "736D5F", offset: 0, extensions: []string{"PDB"}, description: "PalmOS SuperMemo"},
	{pattern: "424F4F4B4D4F4249", offset: 0, extensions: []string{"PRC"}, description: "Palmpilot resource file"},
	{pattern: "74424D504B6E5772", offset: 60, extensions: []string{"PRC"}, description: "PathWay Map file"},
	{pattern: "504158", offset: 0, extensions: []string{"PAX"}, description: "PAX password protected bitmap"},
	{pattern: "B168DE3A", offset: 0, extensions: []string{"DCX"}, description: "PCX bitmap"},
	{pattern: "25504446", offset: 0, extensions: []string{"PDF", "FDF"}, description: "PDF file"},
	{pattern: "CF11E0A1B11AE100", offset: 0, extensions: []string{"DOC"}, description: "Perfect Office document"},
	{pattern: "50455354", offset: 0, extensions: []string{"DAT"}, description: "PestPatrol data|scan strings"},
	{pattern: "3203100000000000000080000000FF00", offset: 0, extensions: []string{"PCS"}, description: "Pfaff Home Embroidery"},
	{pattern: "504750644D41494E", offset: 0, extensions: []string{"PGD"}, description: "PGP disk image"},
	{pattern: "9901", offset: 0, extensions: []string{"PKR"}, description: "PGP public keyring"},
	{pattern: "9500", offset: 0, extensions: []string{"SKR"}, description: "PGP secret keyring_1"},
	{pattern: "9501", offset: 0, extensions: []string{"SKR"}, description: "PGP secret keyring_2"},
	{pattern: "6375736800000002", offset: 0, extensions: []string{"CSH"}, description: "Photoshop Custom Shape"},
	{pattern: "38425053", offset: 0, extensions: []string{"PSD"}, description: "Photoshop image"},
	{pattern: "504B4C495445", offset: 30, extensions: []string{"ZIP"}, description: "PKLITE archive"},
	{pattern: "504B537058", offset: 526, extensions: []string{"ZIP"}, description: "PKSFX self-extracting archive"},
	{pattern: "504B0506", offset: 0, extensions: []string{"ZIP"}, description: "PKZIP archive_2"},
	{pattern: "504B0708", offset: 0, extensions: []string{"ZIP"}, description: "PKZIP archive_3"},
	{pattern: "89504E470D0A1A0A", offset: 0, extensions: []string{"PNG"}, description: "PNG image"},
	{pattern: "50350A", offset: 0, extensions: []string{"PGM"}, description: "Portable Graymap Graphic"},
	{pattern: "737A657A", offset: 0, extensions: []string{"PDB"}, description: "PowerBASIC Debugger Symbols"},
	{pattern: "006E1EF0", offset: 512, extensions: []string{"PPT"}, description: "PowerPoint presentation subheader_1"},
	{pattern: "0F00E803", offset: 512, extensions: []string{"PPT"}, description: "PowerPoint presentation subheader_2"},
	{pattern: "A0461DF0", offset: 512, extensions: []string{"PPT"}, description: "PowerPoint presentation subheader_3"},
	{pattern: "FDFFFFFF0E000000", offset: 512, extensions: []string{"PPT"}, description: "PowerPoint presentation subheader_4"},
	{pattern: "FDFFFFFF1C000000", offset: 512, extensions: []string{"PPT"}, description: "PowerPoint presentation subheader_5"},
	{pattern: "FDFFFFFF43000000", offset: 512, extensions: []string{"PPT"}, description: "PowerPoint presentation subheader_6"},
	{pattern: "4F504C4461746162", offset: 0, extensions: []string{"DBF"}, description: "Psion Series 3 Database"},
	{pattern: "426567696E20507566666572", offset: 0, extensions: []string{"APUF"}, description: "Puffer ASCII encrypted archive"},
	{pattern: "50554658", offset: 0, extensions: []string{"PUF"}, description: "Puffer encrypted archive"},
	{pattern: "514649", offset: 0, extensions: []string{"QEMU"}, description: "Qcow Disk Image"},
	{pattern: "76323030332E3130", offset: 0, extensions: []string{"FLT"}, description: "Qimage filter"},
	{pattern: "5041434B", offset: 0, extensions: []string{"PAK"}, description: "Quake archive file"},
	{pattern: "00004949585052", offset: 0, extensions: []string{"QXD"}, description: "Quark Express (Intel)"},
	{pattern: "00004D4D585052", offset: 0, extensions: []string{"QXD"}, description: "Quark Express (Motorola)"},
	{pattern: "3E000300FEFF090006", offset: 24, extensions: []string{"WB3"}, description: "Quatro Pro for Windows 7.0"},
	{pattern: "458600000600", offset: 0, extensions: []string{"QBB"}, description: "QuickBooks backup"},
	{pattern: "5157205665722E20", offset: 0, extensions: []string{"ABD", "QSD"}, description: "Quicken data file"},
	{pattern: "AC9EBD8F0000", offset: 0, extensions: []string{"QDF"}, description: "Quicken data"},
	{pattern: "51454C20", offset: 92, extensions: []string{"QEL"}, description: "Quicken data"},
	{pattern: "03000000", offset: 0, extensions: []string{"QPH"}, description: "Quicken price history"},
	{pattern: "5000000020000000", offset: 0, extensions: []string{"IDX"}, description: "Quicken QuickFinder Information File"},
	{pattern: "FF0A00", offset: 0, extensions: []string{"QRP"}, description: "QuickReport Report"},
	{pattern: "6D6F6F76", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_1"},
	{pattern: "66726565", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_2"},
	{pattern: "6D646174", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_3"},
	{pattern: "77696465", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_4"},
	{pattern: "706E6F74", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_5"},
	{pattern: "736B6970", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_6"},
	{pattern: "6674797071742020", offset: 4, extensions: []string{"MOV"}, description: "QuickTime movie_7"},
	{pattern: "233F52414449414E", offset: 0, extensions: []string{"HDR"}, description: "Radiance High Dynamic Range image file"},
	{pattern: "43232B44A4434DA5", offset: 0, extensions: []string{"RTD"}, description: "RagTime document"},
	{pattern: "2E524D4600000012", offset: 0, extensions: []string{"RA"}, description: "RealAudio file"},
	{pattern: "2E7261FD00", offset: 0, extensions: []string{"RA"}, description: "RealAudio streaming media"},
	{pattern: "727473703A2F2F", offset: 0, extensions: []string{"RAM"}, description: "RealMedia metafile"},
	{pattern: "2E524D46", offset: 0, extensions: []string{"RM", "RMVB"}, description: "RealMedia streaming media"},
	{pattern: "2E524543", offset: 0, extensions: []string{"IVR"}, description: "RealPlayer video file (V11+)"},
	{pattern: "EDABEEDB", offset: 0, extensions: []string{"RPM"}, description: "RedHat Package Manager"},
	{pattern: "80", offset: 0, extensions: []string{"OBJ"}, description: "Relocatable object code"},
	{pattern: "52494646", offset: 0, extensions: []string{"AVI", "CDA", "QCP", "RMI", "WAV", "WEBP", "4XM", "DS4", "CMX", "DAT", "CDR", "ANI"}, description: "Windows animated cursor"},
	{pattern: "7B5C72746631", offset: 0, extensions: []string{"RTF"}, description: "Rich Text Format"},
	{pattern: "43444441666D7420", offset: 8, extensions: []string{"CDA"}, description: "RIFF CD audio"},
	{pattern: "514C434D666D7420", offset: 8, extensions: []string{"QCP"}, description: "RIFF Qualcomm PureVoice"},
	{pattern: "57454250", offset: 8, extensions: []string{"WEBP"}, description: "RIFF WebP"},
	{pattern: "415649204C495354", offset: 8, extensions: []string{"AVI"}, description: "RIFF Windows Audio"},
	{pattern: "57415645666D7420", offset: 8, extensions: []string{"WAV"}, description: "RIFF Windows Audio"},
	{pattern: "524D494464617461", offset: 8, extensions: []string{"RMI"}, description: "RIFF Windows MIDI"},
	{pattern: "1A52545320434F4D", offset: 0, extensions: []string{"DAT"}, description: "Runtime Software disk image"},
	{pattern: "484541444552205245434F52442A2A2A", offset: 0, extensions: []string{"XPT"}, description: "SAS Transport dataset"},
	{pattern: "52415A4154444231", offset: 0, extensions: []string{"DAT"}, description: "Shareaza (P2P) thumbnail"},
	{pattern: "435753", offset: 0, extensions: []string{"SWF"}, description: "Shockwave Flash file"},
	{pattern: "465753", offset: 0, extensions: []string{"SWF"}, description: "Shockwave Flash player"},
	{pattern: "475832", offset: 0, extensions: []string{"GX2"}, description: "Show Partner graphics file"},
	{pattern: "53494554524F4E49", offset: 0, extensions: []string{"CPI"}, description: "Sietronics CPI XRD document"},
	{pattern: "01DA01010003", offset: 0, extensions: []string{"RGB"}, description: "Silicon Graphics RGB Bitmap"},
	{pattern: "07534B46", offset: 0, extensions: []string{"SKF"}, description: "SkinCrafter skin"},
	{pattern: "232153494C4B0A", offset: 0, extensions: []string{"SIL"}, description: "Skype audio compression"},
	{pattern: "4D4C5357", offset: 0, extensions: []string{"MLS"}, description: "Skype localization data file"},
	{pattern: "6C33336C", offset: 0, extensions: []string{"DBB"}, description: "Skype user data file"},
	{pattern: "534D415254445257", offset: 0, extensions: []string{"SDR"}, description: "SmartDraw Drawing file"},
	{pattern: "53445058", offset: 0, extensions: []string{"SDPX"}, description: "SMPTE DPX (big endian)"},
	{pattern: "58504453", offset: 0, extensions: []string{"DPX"}, description: "SMPTE DPX file (little endian)"},
	{pattern: "72696666", offset: 0, extensions: []string{"AC"}, description: "Sonic Foundry Acid Music File"},
	{pattern: "4D535F564F494345", offset: 0, extensions: []string{"CDR", "DVF", "MSV"}, description: "Sony Compressed Voice File"},
	{pattern: "424C49323233", offset: 0, extensions: []string{"BIN", "BLI", "RBI"}, description: "Speedtouch router firmware"},
	{pattern: "24464C3240282329", offset: 0, extensions: []string{"SAV"}, description: "SPSS Data file"},
	{pattern: "010F0000", offset: 0, extensions: []string{"MDF"}, description: "SQL Data Base"},
	{pattern: "53514C69746520666F726D6174203300", offset: 0, extensions: []string{"DB"}, description: "SQLite database file"},
	{pattern: "414376", offset: 0, extensions: []string{"SLE"}, description: "Steganos virtual secure drive"},
	{pattern: "5350464900", offset: 0, extensions: []string{"SPF"}, description: "StorageCraft ShadownProtect backup file"},
	{pattern: "5349542100", offset: 0, extensions: []string{"SIT"}, description: "StuffIt archive"},
	{pattern: "5374756666497420", offset: 0, extensions: []string{"SIT"}, description: "StuffIt compressed archive"},
	{pattern: "537570657243616C", offset: 0, extensions: []string{"CAL"}, description: "SuperCalc worksheet"},
	{pattern: "3A56455253494F4E", offset: 0, extensions: []string{"SLE"}, description: "Surfplan kite project file"},
	{pattern: "2A2A2A2020496E73", offset: 0, extensions: []string{"LOG"}, description: "Symantec Wise Installer log"},
	{pattern: "FEEF", offset: 0, extensions: []string{"GHO", "GHS"}, description: "Symantex Ghost image file"},
	{pattern: "4C413A", offset: 0, extensions: []string{"DST"}, description: "Tajima emboridery"},
	{pattern: "7573746172", offset: 257, extensions: []string{"TAR"}, description: "Tape Archive"},
	{pattern: "4D435720546563686E6F676F6C696573", offset: 0, extensions: []string{"MTE"}, description: "TargetExpress target file"},
	{pattern: "01014719A400000000000000", offset: 0, extensions: []string{"TBI"}, description: "The Bat! Message Base Index"},
	{pattern: "FDFFFFFF", offset: 512, extensions: []string{"DB"}, description: "Thumbs.db subheader"},
	{pattern: "2F2F203C212D2D203C6D64623A6D6F726B3A7A", offset: 0, extensions: []string{"MSF"}, description: "Thunderbird|Mozilla Mail Summary File"},
	{pattern: "492049", offset: 0, extensions: []string{"TIF", "TIFF"}, description: "TIFF file_1"},
	{pattern: "49492A00", offset: 0, extensions: []string{"TIF", "TIFF"}, description: "TIFF file_2"},
	{pattern: "4D4D002A", offset: 0, extensions: []string{"TIF", "TIFF"}, description: "TIFF file_3"},
	{pattern: "4D4D002B", offset: 0, extensions: []string{"TIF", "TIFF"}, description: "TIFF file_4"},
	{pattern: "4E41565452414646", offset: 0, extensions: []string{"DAT"}, description: "TomTom traffic data"},
	{pattern: "0001000000", offset: 0, extensions: []string{"TTF"}, description: "TrueType font file"},
	{pattern: "554641C6D2C1", offset: 0, extensions: []string{"UFA"}, description: "UFA compressed archive"},
	{pattern: "55464F4F72626974", offset: 0, extensions: []string{"DAT"}, description: "UFO Capture map file"},
	{pattern: "5343486C", offset: 0, extensions: []string{"AST"}, description: "Underground Audio"},
	{pattern: "55434558", offset: 0, extensions: []string{"UCE"}, description: "Unicode extensions"},
	{pattern: "213C617263683E0A", offset: 0, extensions: []string{"LIB"}, description: "Unix archiver (ar)|MS Program Library Common Object File Format (COFF)"},
	{pattern: "3C3F786D6C2076657273696F6E3D22", offset: 0, extensions: []string{"XML"}, description: "User Interface Language"},
	{pattern: "626567696E2D626173653634", offset: 0, extensions: []string{"b64"}, description: "UUencoded BASE64 file"},
	{pattern: "424547494E3A5643", offset: 0, extensions: []string{"VCF"}, description: "vCard"},
	{pattern: "454E545259564344", offset: 0, extensions: []string{"VCD"}, description: "VideoVCD|VCDImager file"},
	{pattern: "636F6E6563746978", offset: 0, extensions: []string{"VHD"}, description: "Virtual PC HD image"},
	{pattern: "4F7B", offset: 0, extensions: []string{"DW4"}, description: "Visio|DisplayWrite 4 text file"},
	{pattern: "56455253494F4E20", offset: 0, extensions: []string{"CTL"}, description: "Visual Basic User-defined Control file"},
	{pattern: "564350434830", offset: 0, extensions: []string{"PCH"}, description: "Visual C PreCompiled header"},
	{pattern: "5B4D535643", offset: 0, extensions: []string{"VCW"}, description: "Visual C++ Workbench Info File"},
	{pattern: "4D6963726F736F66742056697375616C", offset: 0, extensions: []string{"SLN"}, description: "Visual Studio .NET file"},
	{pattern: "FDFFFFFF04", offset: 512, extensions: []string{"SUO"}, description: "Visual Studio Solution subheader"},
	{pattern: "1F8B08", offset: 0, extensions: []string{"VLT", "GZ"}, description: "GZIP archive file"},
	{pattern: "4D73526366", offset: 0, extensions: []string{"GDB"}, description: "VMapSource GPS Waypoint Database"},
	{pattern: "434F5744", offset: 0, extensions: []string{"VMDK"}, description: "VMware 3 Virtual Disk"},
	{pattern: "23204469736B2044", offset: 0, extensions: []string{"VMDK"}, description: "VMware 4 Virtual Disk description"},
	{pattern: "4B444D", offset: 0, extensions: []string{"VMDK"}, description: "VMware 4 Virtual Disk"},
	{pattern: "4D52564E", offset: 0, extensions: []string{"NVRAM"}, description: "VMware BIOS state file"},
	{pattern: "5B564D445D", offset: 0, extensions: []string{"VMD"}, description: "VocalTec VoIP media file"},
	{pattern: "574D4D50", offset: 0, extensions: []string{"DAT"}, description: "Walkman MP3 file"},
	{pattern: "1A45DFA3", offset: 0, extensions: []string{"WEBM"}, description: "WebM video file"},
	{pattern: "436174616C6F6720", offset: 0, extensions: []string{"CTF"}, description: "WhereIsIt Catalog"},
	{pattern: "54485000", offset: 0, extensions: []string{"THP"}, description: "Wii-GameCube"},
	{pattern: "68490000", offset: 0, extensions: []string{"SHD"}, description: "Win Server 2003 printer spool file"},
	{pattern: "67490000", offset: 0, extensions: []string{"SHD"}, description: "Win2000|XP printer spool file"},
	{pattern: "B04D4643", offset: 0, extensions: []string{"PWL"}, description: "Win95 password file"},
	{pattern: "E3828596", offset: 0, extensions: []string{"PWL"}, description: "Win98 password file"},
	{pattern: "4B490000", offset: 0, extensions: []string{"SHD"}, description: "Win9x printer spool file"},
	{pattern: "43524547", offset: 0, extensions: []string{"DAT"}, description: "Win9x registry hive"},
	{pattern: "5B706C61796C6973745D", offset: 0, extensions: []string{"PLS"}, description: "WinAmp Playlist"},
	{pattern: "434D4D4D15000000", offset: 0, extensions: []string{"DB"}, description: "Windows 7 thumbnail"},
	{pattern: "494D4D4D15000000", offset: 0, extensions: []string{"DB"}, description: "Windows 7 thumbnail_2"},
	{pattern: "7B0D0A6F20", offset: 0, extensions: []string{"LGC", "LGD"}, description: "Windows application log"},
	{pattern: "B5A2B0B3B3B0A5B5", offset: 0, extensions: []string{"CAL"}, description: "Windows calendar"},
	{pattern: "00000200", offset: 0, extensions: []string{"CUR", "WB2"}, description: "QuattroPro spreadsheet"},
	{pattern: "0000000014000000", offset: 0, extensions: []string{"TBI"}, description: "Windows Disk Image"},
	{pattern: "4D444D5093A7", offset: 0, extensions: []string{"DMP", "HDMP"}, description: "Windows dump file"},
	{pattern: "300000004C664C65", offset: 0, extensions: []string{"EVT"}, description: "Windows Event Viewer file"},
	{pattern: "E8", offset: 0, extensions: []string{"COM", "SYS"}, description: "Windows executable file_1"},
	{pattern: "E9", offset: 0, extensions: []string{"COM", "SYS"}, description: "Windows executable file_2"},
	{pattern: "EB", offset: 0, extensions: []string{"COM", "SYS"}, description: "Windows executable file_3"},
	{pattern: "FF", offset: 0, extensions: []string{"SYS"}, description: "Windows executable"},
	{pattern: "D7CDC69A", offset: 0, extensions: []string{"WMF"}, description: "Windows graphics metafile"},
	{pattern: "0000FFFFFFFF", offset: 6, extensions: []string{"HLP"}, description: "Windows Help file_1"},
	{pattern: "3F5F0300", offset: 0, extensions: []string{"GID", "HLP"}, description: "Windows Help file_2"},
	{pattern: "4C4E0200", offset: 0, extensions: []string{"GID", "HLP"}, description: "Windows help file_3"},
	{pattern: "00000100", offset: 0, extensions: []string{"ICO", "SPL"}, description: "Windows icon|printer spool file"},
	{pattern: "FF464F4E54", offset: 0, extensions: []string{"CPI"}, description: "Windows international code page"},
	{pattern: "3026B2758E66CF11", offset: 0, extensions: []string{"ASF", "WMA", "WMV"}, description: "Windows Media Audio|Video File"},
	{pattern: "4D6963726F736F66742057696E646F", offset: 84, extensions: []string{"WPL"}, description: "Windows Media Player playlist"},
	{pattern: "504147454455", offset: 0, extensions: []string{"DMP"}, description: "Windows memory dump"},
	{pattern: "1100000053434341", offset: 0, extensions: []string{"PF"}, description: "Windows prefetch file"},
	{pattern: "53434341", offset: 4, extensions: []string{"PF"}, description: "Windows prefetch"},
	{pattern: "504D4343", offset: 0, extensions: []string{"GRP"}, description: "Windows Program Manager group file"},
	{pattern: "FFFE", offset: 0, extensions: []string{"REG"}, description: "Windows Registry file"},
	{pattern: "4C00000001140200", offset: 0, extensions: []string{"LNK"}, description: "Windows shortcut file"},
	{pattern: "456C6646696C6500", offset: 0, extensions: []string{"EVTX"}, description: "Windows Vista event log"},
	{pattern: "3C3F786D6C2076657273696F6E3D", offset: 0, extensions: []string{"MANIFEST"}, description: "Windows Visual Stylesheet"},
	{pattern: "4D5A", offset: 0, extensions: []string{"COM", "DLL", "DRV", "EXE", "PIF", "QTS", "QTX", "SYS", "VXD", "386", "CPL", "OCX", "VBX", "SCR", "FON", "OLB", "AX", "ACM"}, description: "MS audio compression manager driver"},
	{pattern: "52545353", offset: 0, extensions: []string{"CAP"}, description: "WinNT Netmon capture file"},
	{pattern: "66490000", offset: 0, extensions: []string{"SHD"}, description: "WinNT printer spool file"},
	{pattern: "72656766", offset: 0, extensions: []string{"DAT"}, description: "WinNT registry file"},
	{pattern: "52454745444954", offset: 0, extensions: []string{"REG", "SUD"}, description: "WinNT Registry|Registry Undo files"},
	{pattern: "1A350100", offset: 0, extensions: []string{"ETH"}, description: "WinPharoah capture file"},
	{pattern: "D20A0000", offset: 0, extensions: []string{"FTR"}, description: "WinPharoah filter file"},
	{pattern: "526172211A0700", offset: 0, extensions: []string{"RAR"}, description: "WinRAR compressed archive"},
	{pattern: "DBA52D00", offset: 0, extensions: []string{"DOC"}, description: "Word 2.0 file"},
	{pattern: "ECA5C100", offset: 512, extensions: []string{"DOC"}, description: "Word document subheader"},
	{pattern: "434246494C45", offset: 0, extensions: []string{"CBD"}, description: "WordPerfect dictionary"},
	{pattern: "FF575043", offset: 0, extensions: []string{"WP", "WPD", "WPG", "WPP", "WP5", "WP6"}, description: "WordPerfect text and graphics"},
	{pattern: "81CDAB", offset: 0, extensions: []string{"WPF"}, description: "WordPerfect text"},
	{pattern: "575332303030", offset: 0, extensions: []string{"WS2"}, description: "WordStar for Windows file"},
	{pattern: "1D7D", offset: 0, extensions: []string{"WS"}, description: "WordStar Version 5.0|6.0 document"},
	{pattern: "FF00020004040554", offset: 0, extensions: []string{"WKS"}, description: "Works for Windows spreadsheet"},
	{pattern: "5850434F4D0A5479", offset: 0, extensions: []string{"XPT"}, description: "XPCOM libraries"},
	{pattern: "FD377A585A00", offset: 0, extensions: []string{"XZ"}, description: "XZ archive"},
	{pattern: "4D4D4D440000", offset: 0, extensions: []string{"MMF"}, description: "Yamaha Synthetic music Mobile Application Format"},
	{pattern: "504B030414000100", offset: 0, extensions: []string{"ZIP"}, description: "ZLock Pro encrypted ZIP"},
	{pattern: "4D5A90000300000004000000FFFF", offset: 0, extensions: []string{"ZAP"}, description: "ZoneAlam data file"},
	{pattern: "5A4F4F20", offset: 0, extensions: []string{"ZOO"}, description: "ZOO compressed archive"},
	{pattern: "7A626578", offset: 0, extensions: []string{"INFO"}, description: "ZoomBrowser Image Index"},
	{pattern: "0A020101", offset: 0, extensions: []string{"PCX"}, description: "ZSOFT Paintbrush file_1"},
	{pattern: "0A030101", offset: 0, extensions: []string{"PCX"}, description: "ZSOFT Paintbrush file_2"},
	{pattern: "0A050101", offset: 0, extensions: []string{"PCX"}, description: "ZSOFT Paintbrush file_3"},
}

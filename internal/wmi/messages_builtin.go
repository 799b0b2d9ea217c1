//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

// Builtin message IDs, in protocol order within each group.
// New messages are only ever appended to the end of their group.

// Start up commands.
const (
	CmdInit = MessageID(GrpStart)<<grpShift + iota
)

// Start up events.
const (
	EvtServiceReady = evtBase + MessageID(GrpStart)<<grpShift + iota
	EvtReady
	EvtServiceAvailable
	EvtServiceReadyExt
	EvtServiceReadyExt2
)

// Scan commands.
const (
	CmdStartScan = MessageID(GrpScan)<<grpShift + iota
	CmdStopScan
	CmdScanChanList
	CmdScanSchPrioTbl
	CmdScanUpdateRequest
	CmdScanProbReqOUI
	CmdScanAdaptiveDwellConfig
	CmdScanDBSDutyCycle
)

// Scan events.
const (
	EvtScan = evtBase + MessageID(GrpScan)<<grpShift + iota
	EvtScanChanInfo
	EvtScanRSSILookup
)

// Physical device commands.
const (
	CmdPdevSetRegdomain = MessageID(GrpPdev)<<grpShift + iota
	CmdPdevSetChannel
	CmdPdevSetParam
	CmdPdevPktlogEnable
	CmdPdevPktlogDisable
	CmdPdevSetWMMParams
	CmdPdevSetHTCapIE
	CmdPdevSetVHTCapIE
	CmdPdevSetDSCPTIDMap
	CmdPdevSetQuietMode
	CmdPdevGreenAPPsEnable
	CmdPdevGetTPCConfig
	CmdPdevSetBaseMacaddr
	CmdPdevDump
	CmdPdevSetLEDConfig
	CmdPdevGetTemperature
	CmdPdevSetLEDFlashing
	CmdPdevSmartAntEnable
	CmdPdevSmartAntSetRxAntenna
	CmdPdevSetAntennaSwitchTable
	CmdPdevSetCTLTable
	CmdPdevSetMimogainTable
	CmdPdevFIPS
	CmdPdevGetANICckConfig
	CmdPdevGetANIOfdmConfig
	CmdPdevGetNFCalPower
	CmdPdevGetTPC
	CmdPdevSetHWMode
	CmdPdevSetMACConfig
	CmdPdevSetWakeupConfig
	CmdPdevGetAntdivStatus
	CmdPdevGetChipPowerStats
	CmdPdevSetStatsThreshold
	CmdPdevMultipleVdevRestartRequest
	CmdPdevUpdatePktRouting
	CmdPdevCheckCalVersion
	CmdPdevSetDiversityGain
	CmdPdevDivRSSIAntid
	CmdPdevBSSChanInfoRequest
	CmdPdevUpdatePMKCache
	CmdPdevUpdateFILSHLPPkt
	CmdPdevSetACTxQueueOptimized
	CmdPdevSetRxFilterPromiscuous
	CmdPdevDMARingCfg
	CmdPdevSetTxChainmask
	CmdPdevResume
	CmdPdevSuspend
)

// Physical device events.
const (
	EvtPdevTPCConfig = evtBase + MessageID(GrpPdev)<<grpShift + iota
	EvtChanInfo
	EvtPhyErr
	EvtPdevFTMIntg
	EvtPdevTemperature
	EvtPdevANICckLevel
	EvtPdevANIOfdmLevel
	EvtPdevNFCalPowerAllChannels
	EvtPdevTPC
	EvtPdevSetHWModeResp
	EvtPdevHWModeTransition
	EvtPdevSetMACConfigResp
	EvtPdevCSASwitchCountStatus
	EvtPdevCheckCalVersion
	EvtPdevChipPowerStats
	EvtPdevBSSChanInfo
	EvtPdevAntdivStatus
	EvtPdevDivRSSIAntid
	EvtPdevDMARingBufRelease
	EvtPdevResume
)

// Virtual device commands.
const (
	CmdVdevCreate = MessageID(GrpVdev)<<grpShift + iota
	CmdVdevDelete
	CmdVdevStartRequest
	CmdVdevRestartRequest
	CmdVdevUp
	CmdVdevStop
	CmdVdevDown
	CmdVdevSetParam
	CmdVdevInstallKey
	CmdVdevWNMSleepmode
	CmdVdevWMMAddts
	CmdVdevWMMDelts
	CmdVdevSetWMMParams
	CmdVdevSetGTXParams
	CmdVdevIPsecNATKeepaliveFilter
	CmdVdevPLMReqStart
	CmdVdevPLMReqStop
	CmdVdevTSFTstampAction
	CmdVdevSetIE
	CmdVdevRatemask
	CmdVdevSetNACRSSI
	CmdVdevSetQuietMode
	CmdVdevSetCustomAggrSize
	CmdVdevEncryptDecryptDataReq
	CmdVdevAddMACAddrToRxFilter
	CmdVdevSetARPStats
	CmdVdevGetARPStats
	CmdVdevGetTxPower
	CmdVdevSetDSCPTIDMap
	CmdVdevSetKeepalive
	CmdVdevGetKeepalive
	CmdVdevSpectralScanConfigure
	CmdVdevSpectralScanEnable
	CmdBcnTmpl
	CmdPrbTmpl
	CmdVdevLimitOffchan
	CmdVdevSetPCL
	CmdVdevGetMWSCoexInfo
)

// Virtual device events.
const (
	EvtVdevStartResp = evtBase + MessageID(GrpVdev)<<grpShift + iota
	EvtVdevStopped
	EvtVdevInstallKeyComplete
	EvtVdevMCCBcnIntervalChangeReq
	EvtVdevTSFReport
	EvtVdevDeleteResp
	EvtVdevEncryptDecryptDataResp
	EvtVdevGetARPStatResp
	EvtVdevGetTxPowerResp
	EvtVdevGetKeepaliveResp
	EvtVdevBcnReceptionStats
	EvtVdevMgmtOffload
	EvtVdevDisconnect
)

// Peer commands.
const (
	CmdPeerCreate = MessageID(GrpPeer)<<grpShift + iota
	CmdPeerDelete
	CmdPeerFlushTids
	CmdPeerSetParam
	CmdPeerAssoc
	CmdPeerAddWDSEntry
	CmdPeerRemoveWDSEntry
	CmdPeerMcastGroup
	CmdPeerInfoReq
	CmdPeerGetEstimatedLinkspeed
	CmdPeerSetRateReportCondition
	CmdPeerUpdateWDSEntry
	CmdPeerAddProxyStaEntry
	CmdPeerSmartAntSetTxAntenna
	CmdPeerSmartAntSetTrainInfo
	CmdPeerSmartAntSetNodeConfigOps
	CmdPeerATFRequest
	CmdPeerBWFRequest
	CmdPeerReorderQueueSetup
	CmdPeerReorderQueueRemove
	CmdPeerSetRxBlocksize
	CmdPeerAntdivInfoReq
	CmdPeerUnmapResponse
	CmdPeerTIDConfigurations
)

// Peer events.
const (
	EvtPeerStaKickout = evtBase + MessageID(GrpPeer)<<grpShift + iota
	EvtPeerInfo
	EvtPeerEstimatedLinkspeed
	EvtPeerState
	EvtPeerAssocConf
	EvtPeerDeleteResp
	EvtPeerAntdivInfo
	EvtPeerCreateConf
	EvtPeerTxFailCntThr
	EvtPeerOperModeChange
)

// Management frames commands.
const (
	CmdMgmtTx = MessageID(GrpMgmt)<<grpShift + iota
	CmdMgmtTxSend
	CmdOffchanDataTxSend
	CmdBcnOffloadCtrl
	CmdPrbRespTmpl
	CmdFDTmpl
	CmdBcnSendFromHost
)

// Management frames events.
const (
	EvtMgmtRx = evtBase + MessageID(GrpMgmt)<<grpShift + iota
	EvtHostSWBA
	EvtTBTTOffsetUpdate
	EvtOffloadBcnTxStatus
	EvtOffloadProbRespTxStatus
	EvtMgmtTxCompletion
	EvtTBTTOffsetExtUpdate
	EvtOffchanDataTxCompletion
	EvtMgmtTxBundleCompletion
)

// Block ack negotiation commands.
const (
	CmdAddBAClearResp = MessageID(GrpBaNeg)<<grpShift + iota
	CmdAddBASend
	CmdDelBASend
	CmdAddBASetResp
	CmdSendSingleAMSDU
)

// Block ack negotiation events.
const (
	EvtTxDelBAComplete = evtBase + MessageID(GrpBaNeg)<<grpShift + iota
	EvtTxAddBAComplete
	EvtBARspSSN
	EvtAggrStateTrig
)

// Station power save commands.
const (
	CmdStaPowersaveMode = MessageID(GrpStaPs)<<grpShift + iota
	CmdStaPowersaveParam
	CmdStaMimoPsMode
	CmdAPPsPeerParam
	CmdAPPsPeerUAPSDCoex
	CmdAPPsEGAPParam
)

// Station power save events.
const (
	EvtAPPsEGAPInfo = evtBase + MessageID(GrpStaPs)<<grpShift + iota
	EvtStaPsWakeReason
)

// DFS commands.
const (
	CmdPdevDFSEnable = MessageID(GrpDfs)<<grpShift + iota
	CmdPdevDFSDisable
	CmdDFSPhyErrFilterEna
	CmdDFSPhyErrFilterDis
	CmdPdevDFSPhyErrOffloadEnable
	CmdPdevDFSPhyErrOffloadDisable
	CmdVdevADFSChCfg
	CmdVdevADFSOCACAbort
)

// DFS events.
const (
	EvtDFSRadarDetection = evtBase + MessageID(GrpDfs)<<grpShift + iota
	EvtVdevDFSCACComplete
	EvtVdevADFSOCACComplete
	EvtDFSRadarFound
)

// Roaming commands.
const (
	CmdRoamScanMode = MessageID(GrpRoam)<<grpShift + iota
	CmdRoamScanRSSIThreshold
	CmdRoamScanPeriod
	CmdRoamScanRSSIChangeThreshold
	CmdRoamAPProfile
	CmdRoamChanList
	CmdRoamScanCmd
	CmdRoamSynchComplete
	CmdRoamSetRICRequest
	CmdRoamInvoke
	CmdRoamFilter
	CmdRoamSubnetChangeConfig
	CmdRoamConfigureMAWC
	CmdRoamSetMBOParam
	CmdRoamPERConfig
	CmdRoamBSSLoadConfig
	CmdRoamDeauthConfig
	CmdRoamIdleConfig
	CmdRoamPreauthStatus
)

// Roaming events.
const (
	EvtRoam = evtBase + MessageID(GrpRoam)<<grpShift + iota
	EvtRoamSynch
	EvtRoamScanStats
	EvtRoamPreauthStart
	EvtRoamPmkidRequest
)

// OCB and other offloads commands.
const (
	CmdOCBSetConfig = MessageID(GrpOffload)<<grpShift + iota
	CmdOCBSetUtcTime
	CmdOCBStartTimingAdvert
	CmdOCBStopTimingAdvert
	CmdOCBGetTSFTimer
	CmdDCCGetStats
	CmdDCCClearStats
	CmdDCCUpdateNDL
	CmdRSSIBreachMonitorConfig
	CmdLPIStartScan
	CmdLPIStopScan
	CmdLPIMgmtSnoopingConfig
)

// OCB and other offloads events.
const (
	EvtOCBSetConfigResp = evtBase + MessageID(GrpOffload)<<grpShift + iota
	EvtOCBGetTSFTimerResp
	EvtDCCGetStatsResp
	EvtDCCUpdateNDLResp
	EvtDCCStats
	EvtRSSIBreach
	EvtLPIResult
	EvtLPIStatus
)

// Wake on wireless commands.
const (
	CmdWoWAddWakePattern = MessageID(GrpWow)<<grpShift + iota
	CmdWoWDelWakePattern
	CmdWoWEnableDisableWakeEvent
	CmdWoWEnable
	CmdWoWHostwakeupFromSleep
	CmdWoWIOACAddKeepalive
	CmdWoWIOACDelKeepalive
	CmdWoWIOACAddWakePattern
	CmdWoWIOACDelWakePattern
	CmdD0WoWEnableDisable
	CmdExtWoWEnable
	CmdExtWoWSetAppType1Params
	CmdExtWoWSetAppType2Params
	CmdWoWEnableICMPv6NaFlt
	CmdWoWUDPSvcOfld
	CmdWoWHostwakeupGPIOPinPatternConfig
	CmdWoWSetActionWakeUp
)

// Wake on wireless events.
const (
	EvtWoWWakeupHost = evtBase + MessageID(GrpWow)<<grpShift + iota
	EvtWoWInitialWakeup
)

// RTT and OEM commands.
const (
	CmdRTTMeasreq = MessageID(GrpRtt)<<grpShift + iota
	CmdRTTTSF
	CmdOEMReq
)

// RTT and OEM events.
const (
	EvtRTTMeasurementReport = evtBase + MessageID(GrpRtt)<<grpShift + iota
	EvtRTTErrorReport
	EvtOEMCapability
	EvtOEMMeasurementReport
	EvtOEMErrorReport
	EvtOEMResponse
)

// Spectral scan commands.
const (
	CmdSpectralScanConf = MessageID(GrpSpectral)<<grpShift + iota
	CmdSpectralScanEnable
)

// Spectral scan events.
const (
	EvtSpectralScanReport = evtBase + MessageID(GrpSpectral)<<grpShift + iota
)

// Statistics commands.
const (
	CmdRequestStats = MessageID(GrpStats)<<grpShift + iota
	CmdMCCSchedTrafficStats
	CmdRequestLinkStats
	CmdClearLinkStats
	CmdStartLinkStats
	CmdRequestStatsExt
	CmdRequestPeerStatsInfo
	CmdRequestRadioChanStats
	CmdRequestWLMStats
	CmdRequestRCPI
	CmdRequestBcnStats
	CmdRequestPeerStatsInfoExt
)

// Statistics events.
const (
	EvtUpdateStats = evtBase + MessageID(GrpStats)<<grpShift + iota
	EvtIfaceLinkStats
	EvtPeerLinkStats
	EvtRadioLinkStats
	EvtUpdateFWMemDump
	EvtStatsExt
	EvtPeerStatsInfo
	EvtRadioChanStats
	EvtRCPIInfo
	EvtWLMStats
	EvtUpdateRSSIInfo
	EvtReportStats
)

// ARP and NS offload commands.
const (
	CmdSetARPNSOffload = MessageID(GrpArpNsOfl)<<grpShift + iota
	CmdAddProactiveARPRspPattern
	CmdDelProactiveARPRspPattern
)

// Network list offload commands.
const (
	CmdNetworkListOffloadConfig = MessageID(GrpNlo)<<grpShift + iota
	CmdApfind
	CmdPasspointListConfig
	CmdNLOConfigRSSIParams
)

// Network list offload events.
const (
	EvtNLOMatch = evtBase + MessageID(GrpNlo)<<grpShift + iota
	EvtNLOScanComplete
	EvtApfind
	EvtPasspointMatch
)

// GTK offload commands.
const (
	CmdGTKOffload = MessageID(GrpGtkOfl)<<grpShift + iota
	CmdGTKOffloadGetInfo
)

// GTK offload events.
const (
	EvtGTKOffloadStatus = evtBase + MessageID(GrpGtkOfl)<<grpShift + iota
	EvtGTKRekeyFail
)

// Checksum offload commands.
const (
	CmdVdevSetCsumOffload = MessageID(GrpCsumOfl)<<grpShift + iota
)

// Chatter mode commands.
const (
	CmdChatterSetMode = MessageID(GrpChatter)<<grpShift + iota
	CmdChatterAddCoalescingFilter
	CmdChatterDeleteCoalescingFilter
	CmdChatterCoalescingQuery
)

// Chatter mode events.
const (
	EvtChatterPCQuery = evtBase + MessageID(GrpChatter)<<grpShift + iota
)

// TID commands.
const (
	CmdPeerTIDAddBA = MessageID(GrpTid)<<grpShift + iota
	CmdPeerTIDDelBA
	CmdStaDTIMPsMethod
	CmdStaUAPSDAutoTrig
	CmdStaKeepalive
)

// Station vdev commands.
const (
	CmdVdevStaBATimeout = MessageID(GrpVdevSta)<<grpShift + iota
	CmdVdevStaSMPSForceMode
	CmdVdevStaSMPSParam
)

// Station vdev events.
const (
	EvtStaSMPSForceModeComplete = evtBase + MessageID(GrpVdevSta)<<grpShift + iota
)

// Miscellaneous commands.
const (
	CmdEcho = MessageID(GrpMisc)<<grpShift + iota
	CmdPdevUTF
	CmdDbgLogCfg
	CmdPdevQVIT
	CmdFwtestVdevMCCSetTBTTMode
	CmdVdevSetKeepaliveV2
	CmdForceFWHang
	CmdSetMcastBcastFilter
	CmdDbgLogTimeStampSync
	CmdSetMultipleMcastFilter
	CmdGetFWMemDump
	CmdDebugMesgFlush
	CmdDiagEventLogConfig
	CmdSetCurrentCountry
	CmdSetInitCountry
	CmdSet11dCountry
	CmdRequestWlanStats
	CmdRequestRSSI
	CmdPdevGetNFCalPowerExt
	CmdSetFWDebugTSF
	CmdUnitTest
)

// Miscellaneous events.
const (
	EvtEcho = evtBase + MessageID(GrpMisc)<<grpShift + iota
	EvtPdevUTF
	EvtDebugMessage
	EvtDebugPrint
	EvtDCSInterference
	EvtPdevQVIT
	EvtWlanProfileData
	EvtDebugMesgFlushComplete
	EvtDiagEventLogSupported
	EvtRegChanListCc
	EvtNewCountry11d
	EvtUpdateWHALMIBStats
)

// GPIO commands.
const (
	CmdGPIOConfig = MessageID(GrpGpio)<<grpShift + iota
	CmdGPIOOutput
)

// GPIO events.
const (
	EvtGPIOInput = evtBase + MessageID(GrpGpio)<<grpShift + iota
)

// Firmware test commands.
const (
	CmdFwtestP2PSetOppPSParam = MessageID(GrpFwTest)<<grpShift + iota
	CmdFwtestUnitTest
	CmdFwtestNANTest
)

// Firmware test events.
const (
	EvtFwtestUnitTest = evtBase + MessageID(GrpFwTest)<<grpShift + iota
)

// TDLS commands.
const (
	CmdTDLSSetState = MessageID(GrpTdls)<<grpShift + iota
	CmdTDLSPeerUpdate
	CmdTDLSSetOffchanMode
)

// TDLS events.
const (
	EvtTDLSPeer = evtBase + MessageID(GrpTdls)<<grpShift + iota
)

// Resource manager commands.
const (
	CmdResmgrAdaptiveOcsEnDis = MessageID(GrpResmgr)<<grpShift + iota
	CmdResmgrSetChanTimeQuota
	CmdResmgrSetChanLatency
)

// Resource manager events.
const (
	EvtResmgrChanTimeQuota = evtBase + MessageID(GrpResmgr)<<grpShift + iota
)

// P2P commands.
const (
	CmdP2PDevSetDeviceInfo = MessageID(GrpP2p)<<grpShift + iota
	CmdP2PDevSetDiscoverability
	CmdP2PGoSetBeaconIE
	CmdP2PGoSetProbeRespIE
	CmdP2PSetVendorIEData
	CmdP2PDiscOffloadConfig
	CmdP2PDiscOffloadAppIE
	CmdP2PDiscOffloadPattern
	CmdP2PSetNoA
	CmdP2PSetOppPS
	CmdP2PListenOffloadStart
	CmdP2PListenOffloadStop
)

// P2P events.
const (
	EvtP2PNoA = evtBase + MessageID(GrpP2p)<<grpShift + iota
	EvtP2PDiscReport
	EvtP2PListenOffloadStopped
	EvtP2PLOStop
)

// Beacon filter commands.
const (
	CmdAddBcnFilter = MessageID(GrpBcnFilter)<<grpShift + iota
	CmdRmvBcnFilter
	CmdBcnFilterRx
)

// Extended scan commands.
const (
	CmdExtscanStart = MessageID(GrpExtscan)<<grpShift + iota
	CmdExtscanStop
	CmdExtscanConfigureWlanChangeMonitor
	CmdExtscanConfigureHotlistMonitor
	CmdExtscanGetCachedResults
	CmdExtscanGetWlanChangeResults
	CmdExtscanSetCapabilities
	CmdExtscanGetCapabilities
	CmdExtscanConfigureHotlistSSIDMonitor
)

// Extended scan events.
const (
	EvtExtscanStartStop = evtBase + MessageID(GrpExtscan)<<grpShift + iota
	EvtExtscanOperation
	EvtExtscanTableUsage
	EvtExtscanCachedResults
	EvtExtscanWlanChangeResults
	EvtExtscanHotlistMatch
	EvtExtscanCapabilities
	EvtExtscanHotlistSSIDMatch
)

// Coexistence commands.
const (
	CmdCoexConfig = MessageID(GrpCoex)<<grpShift + iota
	CmdCoexGetAntennaIsolation
	CmdChanAvoidUpdate
)

// Coexistence events.
const (
	EvtCoexAntennaIsolation = evtBase + MessageID(GrpCoex)<<grpShift + iota
	EvtChanAvoid
)

// Packet filter commands.
const (
	CmdBPFGetCapability = MessageID(GrpBpf)<<grpShift + iota
	CmdBPFGetVdevStats
	CmdBPFSetVdevInstructions
	CmdBPFDelVdevInstructions
	CmdBPFSetVdevActiveMode
	CmdBPFSetVdevEnable
	CmdBPFSetVdevWorkMemory
	CmdBPFGetVdevWorkMemory
)

// Packet filter events.
const (
	EvtBPFCapabilityInfo = evtBase + MessageID(GrpBpf)<<grpShift + iota
	EvtBPFVdevStats
	EvtBPFGetVdevWorkMemoryResp
)

// Target wake time commands.
const (
	CmdTWTEnable = MessageID(GrpTwt)<<grpShift + iota
	CmdTWTDisable
	CmdTWTAddDialog
	CmdTWTDelDialog
	CmdTWTPauseDialog
	CmdTWTResumeDialog
)

// Target wake time events.
const (
	EvtTWTEnableComplete = evtBase + MessageID(GrpTwt)<<grpShift + iota
	EvtTWTDisableComplete
	EvtTWTAddDialogComplete
	EvtTWTDelDialogComplete
	EvtTWTPauseDialogComplete
	EvtTWTResumeDialogComplete
)

// Motion detection commands.
const (
	CmdMotionDetConfigParam = MessageID(GrpMotionDet)<<grpShift + iota
	CmdMotionDetBaseLineConfigParam
	CmdMotionDetStartStop
	CmdMotionDetBaseLineStartStop
)

// Motion detection events.
const (
	EvtMotionDetHost = evtBase + MessageID(GrpMotionDet)<<grpShift + iota
	EvtMotionDetBaseLineHost
)

var messageNames = map[MessageID]string{
	// Start up
	CmdInit:             "init",
	EvtServiceReady:     "service_ready_event",
	EvtReady:            "ready_event",
	EvtServiceAvailable: "service_available_event",
	EvtServiceReadyExt:  "service_ready_ext_event",
	EvtServiceReadyExt2: "service_ready_ext2_event",
	// Scan
	CmdStartScan:               "start_scan",
	CmdStopScan:                "stop_scan",
	CmdScanChanList:            "scan_chan_list",
	CmdScanSchPrioTbl:          "scan_sch_prio_tbl",
	CmdScanUpdateRequest:       "scan_update_request",
	CmdScanProbReqOUI:          "scan_prob_req_oui",
	CmdScanAdaptiveDwellConfig: "scan_adaptive_dwell_config",
	CmdScanDBSDutyCycle:        "scan_dbs_duty_cycle",
	EvtScan:                    "scan_event",
	EvtScanChanInfo:            "scan_chan_info_event",
	EvtScanRSSILookup:          "scan_rssi_lookup_event",
	// Physical device
	CmdPdevSetRegdomain:               "pdev_set_regdomain",
	CmdPdevSetChannel:                 "pdev_set_channel",
	CmdPdevSetParam:                   "pdev_set_param",
	CmdPdevPktlogEnable:               "pdev_pktlog_enable",
	CmdPdevPktlogDisable:              "pdev_pktlog_disable",
	CmdPdevSetWMMParams:               "pdev_set_wmm_params",
	CmdPdevSetHTCapIE:                 "pdev_set_ht_cap_ie",
	CmdPdevSetVHTCapIE:                "pdev_set_vht_cap_ie",
	CmdPdevSetDSCPTIDMap:              "pdev_set_dscp_tid_map",
	CmdPdevSetQuietMode:               "pdev_set_quiet_mode",
	CmdPdevGreenAPPsEnable:            "pdev_green_ap_ps_enable",
	CmdPdevGetTPCConfig:               "pdev_get_tpc_config",
	CmdPdevSetBaseMacaddr:             "pdev_set_base_macaddr",
	CmdPdevDump:                       "pdev_dump",
	CmdPdevSetLEDConfig:               "pdev_set_led_config",
	CmdPdevGetTemperature:             "pdev_get_temperature",
	CmdPdevSetLEDFlashing:             "pdev_set_led_flashing",
	CmdPdevSmartAntEnable:             "pdev_smart_ant_enable",
	CmdPdevSmartAntSetRxAntenna:       "pdev_smart_ant_set_rx_antenna",
	CmdPdevSetAntennaSwitchTable:      "pdev_set_antenna_switch_table",
	CmdPdevSetCTLTable:                "pdev_set_ctl_table",
	CmdPdevSetMimogainTable:           "pdev_set_mimogain_table",
	CmdPdevFIPS:                       "pdev_fips",
	CmdPdevGetANICckConfig:            "pdev_get_ani_cck_config",
	CmdPdevGetANIOfdmConfig:           "pdev_get_ani_ofdm_config",
	CmdPdevGetNFCalPower:              "pdev_get_nfcal_power",
	CmdPdevGetTPC:                     "pdev_get_tpc",
	CmdPdevSetHWMode:                  "pdev_set_hw_mode",
	CmdPdevSetMACConfig:               "pdev_set_mac_config",
	CmdPdevSetWakeupConfig:            "pdev_set_wakeup_config",
	CmdPdevGetAntdivStatus:            "pdev_get_antdiv_status",
	CmdPdevGetChipPowerStats:          "pdev_get_chip_power_stats",
	CmdPdevSetStatsThreshold:          "pdev_set_stats_threshold",
	CmdPdevMultipleVdevRestartRequest: "pdev_multiple_vdev_restart_request",
	CmdPdevUpdatePktRouting:           "pdev_update_pkt_routing",
	CmdPdevCheckCalVersion:            "pdev_check_cal_version",
	CmdPdevSetDiversityGain:           "pdev_set_diversity_gain",
	CmdPdevDivRSSIAntid:               "pdev_div_rssi_antid",
	CmdPdevBSSChanInfoRequest:         "pdev_bss_chan_info_request",
	CmdPdevUpdatePMKCache:             "pdev_update_pmk_cache",
	CmdPdevUpdateFILSHLPPkt:           "pdev_update_fils_hlp_pkt",
	CmdPdevSetACTxQueueOptimized:      "pdev_set_ac_tx_queue_optimized",
	CmdPdevSetRxFilterPromiscuous:     "pdev_set_rx_filter_promiscuous",
	CmdPdevDMARingCfg:                 "pdev_dma_ring_cfg",
	CmdPdevSetTxChainmask:             "pdev_set_tx_chainmask",
	CmdPdevResume:                     "pdev_resume",
	CmdPdevSuspend:                    "pdev_suspend",
	EvtPdevTPCConfig:                  "pdev_tpc_config_event",
	EvtChanInfo:                       "chan_info_event",
	EvtPhyErr:                         "phyerr_event",
	EvtPdevFTMIntg:                    "pdev_ftm_intg_event",
	EvtPdevTemperature:                "pdev_temperature_event",
	EvtPdevANICckLevel:                "pdev_ani_cck_level_event",
	EvtPdevANIOfdmLevel:               "pdev_ani_ofdm_level_event",
	EvtPdevNFCalPowerAllChannels:      "pdev_nfcal_power_all_channels_event",
	EvtPdevTPC:                        "pdev_tpc_event",
	EvtPdevSetHWModeResp:              "pdev_set_hw_mode_resp_event",
	EvtPdevHWModeTransition:           "pdev_hw_mode_transition_event",
	EvtPdevSetMACConfigResp:           "pdev_set_mac_config_resp_event",
	EvtPdevCSASwitchCountStatus:       "pdev_csa_switch_count_status_event",
	EvtPdevCheckCalVersion:            "pdev_check_cal_version_event",
	EvtPdevChipPowerStats:             "pdev_chip_power_stats_event",
	EvtPdevBSSChanInfo:                "pdev_bss_chan_info_event",
	EvtPdevAntdivStatus:               "pdev_antdiv_status_event",
	EvtPdevDivRSSIAntid:               "pdev_div_rssi_antid_event",
	EvtPdevDMARingBufRelease:          "pdev_dma_ring_buf_release_event",
	EvtPdevResume:                     "pdev_resume_event",
	// Virtual device
	CmdVdevCreate:                  "vdev_create",
	CmdVdevDelete:                  "vdev_delete",
	CmdVdevStartRequest:            "vdev_start_request",
	CmdVdevRestartRequest:          "vdev_restart_request",
	CmdVdevUp:                      "vdev_up",
	CmdVdevStop:                    "vdev_stop",
	CmdVdevDown:                    "vdev_down",
	CmdVdevSetParam:                "vdev_set_param",
	CmdVdevInstallKey:              "vdev_install_key",
	CmdVdevWNMSleepmode:            "vdev_wnm_sleepmode",
	CmdVdevWMMAddts:                "vdev_wmm_addts",
	CmdVdevWMMDelts:                "vdev_wmm_delts",
	CmdVdevSetWMMParams:            "vdev_set_wmm_params",
	CmdVdevSetGTXParams:            "vdev_set_gtx_params",
	CmdVdevIPsecNATKeepaliveFilter: "vdev_ipsec_natkeepalive_filter",
	CmdVdevPLMReqStart:             "vdev_plmreq_start",
	CmdVdevPLMReqStop:              "vdev_plmreq_stop",
	CmdVdevTSFTstampAction:         "vdev_tsf_tstamp_action",
	CmdVdevSetIE:                   "vdev_set_ie",
	CmdVdevRatemask:                "vdev_ratemask",
	CmdVdevSetNACRSSI:              "vdev_set_nac_rssi",
	CmdVdevSetQuietMode:            "vdev_set_quiet_mode",
	CmdVdevSetCustomAggrSize:       "vdev_set_custom_aggr_size",
	CmdVdevEncryptDecryptDataReq:   "vdev_encrypt_decrypt_data_req",
	CmdVdevAddMACAddrToRxFilter:    "vdev_add_mac_addr_to_rx_filter",
	CmdVdevSetARPStats:             "vdev_set_arp_stats",
	CmdVdevGetARPStats:             "vdev_get_arp_stats",
	CmdVdevGetTxPower:              "vdev_get_tx_power",
	CmdVdevSetDSCPTIDMap:           "vdev_set_dscp_tid_map",
	CmdVdevSetKeepalive:            "vdev_set_keepalive",
	CmdVdevGetKeepalive:            "vdev_get_keepalive",
	CmdVdevSpectralScanConfigure:   "vdev_spectral_scan_configure",
	CmdVdevSpectralScanEnable:      "vdev_spectral_scan_enable",
	CmdBcnTmpl:                     "bcn_tmpl",
	CmdPrbTmpl:                     "prb_tmpl",
	CmdVdevLimitOffchan:            "vdev_limit_offchan",
	CmdVdevSetPCL:                  "vdev_set_pcl",
	CmdVdevGetMWSCoexInfo:          "vdev_get_mws_coex_info",
	EvtVdevStartResp:               "vdev_start_resp_event",
	EvtVdevStopped:                 "vdev_stopped_event",
	EvtVdevInstallKeyComplete:      "vdev_install_key_complete_event",
	EvtVdevMCCBcnIntervalChangeReq: "vdev_mcc_bcn_interval_change_req_event",
	EvtVdevTSFReport:               "vdev_tsf_report_event",
	EvtVdevDeleteResp:              "vdev_delete_resp_event",
	EvtVdevEncryptDecryptDataResp:  "vdev_encrypt_decrypt_data_resp_event",
	EvtVdevGetARPStatResp:          "vdev_get_arp_stat_resp_event",
	EvtVdevGetTxPowerResp:          "vdev_get_tx_power_resp_event",
	EvtVdevGetKeepaliveResp:        "vdev_get_keepalive_resp_event",
	EvtVdevBcnReceptionStats:       "vdev_bcn_reception_stats_event",
	EvtVdevMgmtOffload:             "vdev_mgmt_offload_event",
	EvtVdevDisconnect:              "vdev_disconnect_event",
	// Peer
	CmdPeerCreate:                   "peer_create",
	CmdPeerDelete:                   "peer_delete",
	CmdPeerFlushTids:                "peer_flush_tids",
	CmdPeerSetParam:                 "peer_set_param",
	CmdPeerAssoc:                    "peer_assoc",
	CmdPeerAddWDSEntry:              "peer_add_wds_entry",
	CmdPeerRemoveWDSEntry:           "peer_remove_wds_entry",
	CmdPeerMcastGroup:               "peer_mcast_group",
	CmdPeerInfoReq:                  "peer_info_req",
	CmdPeerGetEstimatedLinkspeed:    "peer_get_estimated_linkspeed",
	CmdPeerSetRateReportCondition:   "peer_set_rate_report_condition",
	CmdPeerUpdateWDSEntry:           "peer_update_wds_entry",
	CmdPeerAddProxyStaEntry:         "peer_add_proxy_sta_entry",
	CmdPeerSmartAntSetTxAntenna:     "peer_smart_ant_set_tx_antenna",
	CmdPeerSmartAntSetTrainInfo:     "peer_smart_ant_set_train_info",
	CmdPeerSmartAntSetNodeConfigOps: "peer_smart_ant_set_node_config_ops",
	CmdPeerATFRequest:               "peer_atf_request",
	CmdPeerBWFRequest:               "peer_bwf_request",
	CmdPeerReorderQueueSetup:        "peer_reorder_queue_setup",
	CmdPeerReorderQueueRemove:       "peer_reorder_queue_remove",
	CmdPeerSetRxBlocksize:           "peer_set_rx_blocksize",
	CmdPeerAntdivInfoReq:            "peer_antdiv_info_req",
	CmdPeerUnmapResponse:            "peer_unmap_response",
	CmdPeerTIDConfigurations:        "peer_tid_configurations",
	EvtPeerStaKickout:               "peer_sta_kickout_event",
	EvtPeerInfo:                     "peer_info_event",
	EvtPeerEstimatedLinkspeed:       "peer_estimated_linkspeed_event",
	EvtPeerState:                    "peer_state_event",
	EvtPeerAssocConf:                "peer_assoc_conf_event",
	EvtPeerDeleteResp:               "peer_delete_resp_event",
	EvtPeerAntdivInfo:               "peer_antdiv_info_event",
	EvtPeerCreateConf:               "peer_create_conf_event",
	EvtPeerTxFailCntThr:             "peer_tx_fail_cnt_thr_event",
	EvtPeerOperModeChange:           "peer_oper_mode_change_event",
	// Management frames
	CmdMgmtTx:                  "mgmt_tx",
	CmdMgmtTxSend:              "mgmt_tx_send",
	CmdOffchanDataTxSend:       "offchan_data_tx_send",
	CmdBcnOffloadCtrl:          "bcn_offload_ctrl",
	CmdPrbRespTmpl:             "prb_resp_tmpl",
	CmdFDTmpl:                  "fd_tmpl",
	CmdBcnSendFromHost:         "bcn_send_from_host",
	EvtMgmtRx:                  "mgmt_rx_event",
	EvtHostSWBA:                "host_swba_event",
	EvtTBTTOffsetUpdate:        "tbttoffset_update_event",
	EvtOffloadBcnTxStatus:      "offload_bcn_tx_status_event",
	EvtOffloadProbRespTxStatus: "offload_prob_resp_tx_status_event",
	EvtMgmtTxCompletion:        "mgmt_tx_completion_event",
	EvtTBTTOffsetExtUpdate:     "tbttoffset_ext_update_event",
	EvtOffchanDataTxCompletion: "offchan_data_tx_completion_event",
	EvtMgmtTxBundleCompletion:  "mgmt_tx_bundle_completion_event",
	// Block ack negotiation
	CmdAddBAClearResp:  "addba_clear_resp",
	CmdAddBASend:       "addba_send",
	CmdDelBASend:       "delba_send",
	CmdAddBASetResp:    "addba_set_resp",
	CmdSendSingleAMSDU: "send_singleamsdu",
	EvtTxDelBAComplete: "tx_delba_complete_event",
	EvtTxAddBAComplete: "tx_addba_complete_event",
	EvtBARspSSN:        "ba_rsp_ssn_event",
	EvtAggrStateTrig:   "aggr_state_trig_event",
	// Station power save
	CmdStaPowersaveMode:  "sta_powersave_mode",
	CmdStaPowersaveParam: "sta_powersave_param",
	CmdStaMimoPsMode:     "sta_mimo_ps_mode",
	CmdAPPsPeerParam:     "ap_ps_peer_param",
	CmdAPPsPeerUAPSDCoex: "ap_ps_peer_uapsd_coex",
	CmdAPPsEGAPParam:     "ap_ps_egap_param",
	EvtAPPsEGAPInfo:      "ap_ps_egap_info_event",
	EvtStaPsWakeReason:   "sta_ps_wake_reason_event",
	// DFS
	CmdPdevDFSEnable:               "pdev_dfs_enable",
	CmdPdevDFSDisable:              "pdev_dfs_disable",
	CmdDFSPhyErrFilterEna:          "dfs_phyerr_filter_ena",
	CmdDFSPhyErrFilterDis:          "dfs_phyerr_filter_dis",
	CmdPdevDFSPhyErrOffloadEnable:  "pdev_dfs_phyerr_offload_enable",
	CmdPdevDFSPhyErrOffloadDisable: "pdev_dfs_phyerr_offload_disable",
	CmdVdevADFSChCfg:               "vdev_adfs_ch_cfg",
	CmdVdevADFSOCACAbort:           "vdev_adfs_ocac_abort",
	EvtDFSRadarDetection:           "dfs_radar_detection_event",
	EvtVdevDFSCACComplete:          "vdev_dfs_cac_complete_event",
	EvtVdevADFSOCACComplete:        "vdev_adfs_ocac_complete_event",
	EvtDFSRadarFound:               "dfs_radar_found_event",
	// Roaming
	CmdRoamScanMode:                "roam_scan_mode",
	CmdRoamScanRSSIThreshold:       "roam_scan_rssi_threshold",
	CmdRoamScanPeriod:              "roam_scan_period",
	CmdRoamScanRSSIChangeThreshold: "roam_scan_rssi_change_threshold",
	CmdRoamAPProfile:               "roam_ap_profile",
	CmdRoamChanList:                "roam_chan_list",
	CmdRoamScanCmd:                 "roam_scan_cmd",
	CmdRoamSynchComplete:           "roam_synch_complete",
	CmdRoamSetRICRequest:           "roam_set_ric_request",
	CmdRoamInvoke:                  "roam_invoke",
	CmdRoamFilter:                  "roam_filter",
	CmdRoamSubnetChangeConfig:      "roam_subnet_change_config",
	CmdRoamConfigureMAWC:           "roam_configure_mawc",
	CmdRoamSetMBOParam:             "roam_set_mbo_param",
	CmdRoamPERConfig:               "roam_per_config",
	CmdRoamBSSLoadConfig:           "roam_bss_load_config",
	CmdRoamDeauthConfig:            "roam_deauth_config",
	CmdRoamIdleConfig:              "roam_idle_config",
	CmdRoamPreauthStatus:           "roam_preauth_status",
	EvtRoam:                        "roam_event",
	EvtRoamSynch:                   "roam_synch_event",
	EvtRoamScanStats:               "roam_scan_stats_event",
	EvtRoamPreauthStart:            "roam_preauth_start_event",
	EvtRoamPmkidRequest:            "roam_pmkid_request_event",
	// OCB and other offloads
	CmdOCBSetConfig:            "ocb_set_config",
	CmdOCBSetUtcTime:           "ocb_set_utc_time",
	CmdOCBStartTimingAdvert:    "ocb_start_timing_advert",
	CmdOCBStopTimingAdvert:     "ocb_stop_timing_advert",
	CmdOCBGetTSFTimer:          "ocb_get_tsf_timer",
	CmdDCCGetStats:             "dcc_get_stats",
	CmdDCCClearStats:           "dcc_clear_stats",
	CmdDCCUpdateNDL:            "dcc_update_ndl",
	CmdRSSIBreachMonitorConfig: "rssi_breach_monitor_config",
	CmdLPIStartScan:            "lpi_start_scan",
	CmdLPIStopScan:             "lpi_stop_scan",
	CmdLPIMgmtSnoopingConfig:   "lpi_mgmt_snooping_config",
	EvtOCBSetConfigResp:        "ocb_set_config_resp_event",
	EvtOCBGetTSFTimerResp:      "ocb_get_tsf_timer_resp_event",
	EvtDCCGetStatsResp:         "dcc_get_stats_resp_event",
	EvtDCCUpdateNDLResp:        "dcc_update_ndl_resp_event",
	EvtDCCStats:                "dcc_stats_event",
	EvtRSSIBreach:              "rssi_breach_event",
	EvtLPIResult:               "lpi_result_event",
	EvtLPIStatus:               "lpi_status_event",
	// Wake on wireless
	CmdWoWAddWakePattern:                 "wow_add_wake_pattern",
	CmdWoWDelWakePattern:                 "wow_del_wake_pattern",
	CmdWoWEnableDisableWakeEvent:         "wow_enable_disable_wake_event",
	CmdWoWEnable:                         "wow_enable",
	CmdWoWHostwakeupFromSleep:            "wow_hostwakeup_from_sleep",
	CmdWoWIOACAddKeepalive:               "wow_ioac_add_keepalive",
	CmdWoWIOACDelKeepalive:               "wow_ioac_del_keepalive",
	CmdWoWIOACAddWakePattern:             "wow_ioac_add_wake_pattern",
	CmdWoWIOACDelWakePattern:             "wow_ioac_del_wake_pattern",
	CmdD0WoWEnableDisable:                "d0_wow_enable_disable",
	CmdExtWoWEnable:                      "extwow_enable",
	CmdExtWoWSetAppType1Params:           "extwow_set_app_type1_params",
	CmdExtWoWSetAppType2Params:           "extwow_set_app_type2_params",
	CmdWoWEnableICMPv6NaFlt:              "wow_enable_icmpv6_na_flt",
	CmdWoWUDPSvcOfld:                     "wow_udp_svc_ofld",
	CmdWoWHostwakeupGPIOPinPatternConfig: "wow_hostwakeup_gpio_pin_pattern_config",
	CmdWoWSetActionWakeUp:                "wow_set_action_wake_up",
	EvtWoWWakeupHost:                     "wow_wakeup_host_event",
	EvtWoWInitialWakeup:                  "wow_initial_wakeup_event",
	// RTT and OEM
	CmdRTTMeasreq:           "rtt_measreq",
	CmdRTTTSF:               "rtt_tsf",
	CmdOEMReq:               "oem_req",
	EvtRTTMeasurementReport: "rtt_measurement_report_event",
	EvtRTTErrorReport:       "rtt_error_report_event",
	EvtOEMCapability:        "oem_capability_event",
	EvtOEMMeasurementReport: "oem_measurement_report_event",
	EvtOEMErrorReport:       "oem_error_report_event",
	EvtOEMResponse:          "oem_response_event",
	// Spectral scan
	CmdSpectralScanConf:   "spectral_scan_conf",
	CmdSpectralScanEnable: "spectral_scan_enable",
	EvtSpectralScanReport: "spectral_scan_report_event",
	// Statistics
	CmdRequestStats:            "request_stats",
	CmdMCCSchedTrafficStats:    "mcc_sched_traffic_stats",
	CmdRequestLinkStats:        "request_link_stats",
	CmdClearLinkStats:          "clear_link_stats",
	CmdStartLinkStats:          "start_link_stats",
	CmdRequestStatsExt:         "request_stats_ext",
	CmdRequestPeerStatsInfo:    "request_peer_stats_info",
	CmdRequestRadioChanStats:   "request_radio_chan_stats",
	CmdRequestWLMStats:         "request_wlm_stats",
	CmdRequestRCPI:             "request_rcpi",
	CmdRequestBcnStats:         "request_bcn_stats",
	CmdRequestPeerStatsInfoExt: "request_peer_stats_info_ext",
	EvtUpdateStats:             "update_stats_event",
	EvtIfaceLinkStats:          "iface_link_stats_event",
	EvtPeerLinkStats:           "peer_link_stats_event",
	EvtRadioLinkStats:          "radio_link_stats_event",
	EvtUpdateFWMemDump:         "update_fw_mem_dump_event",
	EvtStatsExt:                "stats_ext_event",
	EvtPeerStatsInfo:           "peer_stats_info_event",
	EvtRadioChanStats:          "radio_chan_stats_event",
	EvtRCPIInfo:                "rcpi_info_event",
	EvtWLMStats:                "wlm_stats_event",
	EvtUpdateRSSIInfo:          "update_rssi_info_event",
	EvtReportStats:             "report_stats_event",
	// ARP and NS offload
	CmdSetARPNSOffload:           "set_arp_ns_offload",
	CmdAddProactiveARPRspPattern: "add_proactive_arp_rsp_pattern",
	CmdDelProactiveARPRspPattern: "del_proactive_arp_rsp_pattern",
	// Network list offload
	CmdNetworkListOffloadConfig: "network_list_offload_config",
	CmdApfind:                   "apfind",
	CmdPasspointListConfig:      "passpoint_list_config",
	CmdNLOConfigRSSIParams:      "nlo_config_rssi_params",
	EvtNLOMatch:                 "nlo_match_event",
	EvtNLOScanComplete:          "nlo_scan_complete_event",
	EvtApfind:                   "apfind_event",
	EvtPasspointMatch:           "passpoint_match_event",
	// GTK offload
	CmdGTKOffload:        "gtk_offload",
	CmdGTKOffloadGetInfo: "gtk_offload_get_info",
	EvtGTKOffloadStatus:  "gtk_offload_status_event",
	EvtGTKRekeyFail:      "gtk_rekey_fail_event",
	// Checksum offload
	CmdVdevSetCsumOffload: "vdev_set_csum_offload",
	// Chatter mode
	CmdChatterSetMode:                "chatter_set_mode",
	CmdChatterAddCoalescingFilter:    "chatter_add_coalescing_filter",
	CmdChatterDeleteCoalescingFilter: "chatter_delete_coalescing_filter",
	CmdChatterCoalescingQuery:        "chatter_coalescing_query",
	EvtChatterPCQuery:                "chatter_pc_query_event",
	// TID
	CmdPeerTIDAddBA:     "peer_tid_addba",
	CmdPeerTIDDelBA:     "peer_tid_delba",
	CmdStaDTIMPsMethod:  "sta_dtim_ps_method",
	CmdStaUAPSDAutoTrig: "sta_uapsd_auto_trig",
	CmdStaKeepalive:     "sta_keepalive",
	// Station vdev
	CmdVdevStaBATimeout:         "vdev_sta_ba_timeout",
	CmdVdevStaSMPSForceMode:     "vdev_sta_smps_force_mode",
	CmdVdevStaSMPSParam:         "vdev_sta_smps_param",
	EvtStaSMPSForceModeComplete: "sta_smps_force_mode_complete_event",
	// Miscellaneous
	CmdEcho:                     "echo",
	CmdPdevUTF:                  "pdev_utf",
	CmdDbgLogCfg:                "dbglog_cfg",
	CmdPdevQVIT:                 "pdev_qvit",
	CmdFwtestVdevMCCSetTBTTMode: "fwtest_vdev_mcc_set_tbtt_mode",
	CmdVdevSetKeepaliveV2:       "vdev_set_keepalive_v2",
	CmdForceFWHang:              "force_fw_hang",
	CmdSetMcastBcastFilter:      "set_mcastbcast_filter",
	CmdDbgLogTimeStampSync:      "dbglog_time_stamp_sync",
	CmdSetMultipleMcastFilter:   "set_multiple_mcast_filter",
	CmdGetFWMemDump:             "get_fw_mem_dump",
	CmdDebugMesgFlush:           "debug_mesg_flush",
	CmdDiagEventLogConfig:       "diag_event_log_config",
	CmdSetCurrentCountry:        "set_current_country",
	CmdSetInitCountry:           "set_init_country",
	CmdSet11dCountry:            "set_11d_country",
	CmdRequestWlanStats:         "request_wlan_stats",
	CmdRequestRSSI:              "request_rssi",
	CmdPdevGetNFCalPowerExt:     "pdev_get_nfcal_power_ext",
	CmdSetFWDebugTSF:            "set_fw_debug_tsf",
	CmdUnitTest:                 "unit_test",
	EvtEcho:                     "echo_event",
	EvtPdevUTF:                  "pdev_utf_event",
	EvtDebugMessage:             "debug_message_event",
	EvtDebugPrint:               "debug_print_event",
	EvtDCSInterference:          "dcs_interference_event",
	EvtPdevQVIT:                 "pdev_qvit_event",
	EvtWlanProfileData:          "wlan_profile_data_event",
	EvtDebugMesgFlushComplete:   "debug_mesg_flush_complete_event",
	EvtDiagEventLogSupported:    "diag_event_log_supported_event",
	EvtRegChanListCc:            "reg_chan_list_cc_event",
	EvtNewCountry11d:            "new_country_11d_event",
	EvtUpdateWHALMIBStats:       "update_whal_mib_stats_event",
	// GPIO
	CmdGPIOConfig: "gpio_config",
	CmdGPIOOutput: "gpio_output",
	EvtGPIOInput:  "gpio_input_event",
	// Firmware test
	CmdFwtestP2PSetOppPSParam: "fwtest_p2p_set_oppps_param",
	CmdFwtestUnitTest:         "fwtest_unit_test",
	CmdFwtestNANTest:          "fwtest_nan_test",
	EvtFwtestUnitTest:         "fwtest_unit_test_event",
	// TDLS
	CmdTDLSSetState:       "tdls_set_state",
	CmdTDLSPeerUpdate:     "tdls_peer_update",
	CmdTDLSSetOffchanMode: "tdls_set_offchan_mode",
	EvtTDLSPeer:           "tdls_peer_event",
	// Resource manager
	CmdResmgrAdaptiveOcsEnDis: "resmgr_adaptive_ocs_en_dis",
	CmdResmgrSetChanTimeQuota: "resmgr_set_chan_time_quota",
	CmdResmgrSetChanLatency:   "resmgr_set_chan_latency",
	EvtResmgrChanTimeQuota:    "resmgr_chan_time_quota_event",
	// P2P
	CmdP2PDevSetDeviceInfo:      "p2p_dev_set_device_info",
	CmdP2PDevSetDiscoverability: "p2p_dev_set_discoverability",
	CmdP2PGoSetBeaconIE:         "p2p_go_set_beacon_ie",
	CmdP2PGoSetProbeRespIE:      "p2p_go_set_probe_resp_ie",
	CmdP2PSetVendorIEData:       "p2p_set_vendor_ie_data",
	CmdP2PDiscOffloadConfig:     "p2p_disc_offload_config",
	CmdP2PDiscOffloadAppIE:      "p2p_disc_offload_appie",
	CmdP2PDiscOffloadPattern:    "p2p_disc_offload_pattern",
	CmdP2PSetNoA:                "p2p_set_noa",
	CmdP2PSetOppPS:              "p2p_set_oppps",
	CmdP2PListenOffloadStart:    "p2p_listen_offload_start",
	CmdP2PListenOffloadStop:     "p2p_listen_offload_stop",
	EvtP2PNoA:                   "p2p_noa_event",
	EvtP2PDiscReport:            "p2p_disc_report_event",
	EvtP2PListenOffloadStopped:  "p2p_listen_offload_stopped_event",
	EvtP2PLOStop:                "p2p_lo_stop_event",
	// Beacon filter
	CmdAddBcnFilter: "add_bcn_filter",
	CmdRmvBcnFilter: "rmv_bcn_filter",
	CmdBcnFilterRx:  "bcn_filter_rx",
	// Extended scan
	CmdExtscanStart:                       "extscan_start",
	CmdExtscanStop:                        "extscan_stop",
	CmdExtscanConfigureWlanChangeMonitor:  "extscan_configure_wlan_change_monitor",
	CmdExtscanConfigureHotlistMonitor:     "extscan_configure_hotlist_monitor",
	CmdExtscanGetCachedResults:            "extscan_get_cached_results",
	CmdExtscanGetWlanChangeResults:        "extscan_get_wlan_change_results",
	CmdExtscanSetCapabilities:             "extscan_set_capabilities",
	CmdExtscanGetCapabilities:             "extscan_get_capabilities",
	CmdExtscanConfigureHotlistSSIDMonitor: "extscan_configure_hotlist_ssid_monitor",
	EvtExtscanStartStop:                   "extscan_start_stop_event",
	EvtExtscanOperation:                   "extscan_operation_event",
	EvtExtscanTableUsage:                  "extscan_table_usage_event",
	EvtExtscanCachedResults:               "extscan_cached_results_event",
	EvtExtscanWlanChangeResults:           "extscan_wlan_change_results_event",
	EvtExtscanHotlistMatch:                "extscan_hotlist_match_event",
	EvtExtscanCapabilities:                "extscan_capabilities_event",
	EvtExtscanHotlistSSIDMatch:            "extscan_hotlist_ssid_match_event",
	// Coexistence
	CmdCoexConfig:              "coex_config",
	CmdCoexGetAntennaIsolation: "coex_get_antenna_isolation",
	CmdChanAvoidUpdate:         "chan_avoid_update",
	EvtCoexAntennaIsolation:    "coex_antenna_isolation_event",
	EvtChanAvoid:               "chan_avoid_event",
	// Packet filter
	CmdBPFGetCapability:         "bpf_get_capability",
	CmdBPFGetVdevStats:          "bpf_get_vdev_stats",
	CmdBPFSetVdevInstructions:   "bpf_set_vdev_instructions",
	CmdBPFDelVdevInstructions:   "bpf_del_vdev_instructions",
	CmdBPFSetVdevActiveMode:     "bpf_set_vdev_active_mode",
	CmdBPFSetVdevEnable:         "bpf_set_vdev_enable",
	CmdBPFSetVdevWorkMemory:     "bpf_set_vdev_work_memory",
	CmdBPFGetVdevWorkMemory:     "bpf_get_vdev_work_memory",
	EvtBPFCapabilityInfo:        "bpf_capability_info_event",
	EvtBPFVdevStats:             "bpf_vdev_stats_event",
	EvtBPFGetVdevWorkMemoryResp: "bpf_get_vdev_work_memory_resp_event",
	// Target wake time
	CmdTWTEnable:               "twt_enable",
	CmdTWTDisable:              "twt_disable",
	CmdTWTAddDialog:            "twt_add_dialog",
	CmdTWTDelDialog:            "twt_del_dialog",
	CmdTWTPauseDialog:          "twt_pause_dialog",
	CmdTWTResumeDialog:         "twt_resume_dialog",
	EvtTWTEnableComplete:       "twt_enable_complete_event",
	EvtTWTDisableComplete:      "twt_disable_complete_event",
	EvtTWTAddDialogComplete:    "twt_add_dialog_complete_event",
	EvtTWTDelDialogComplete:    "twt_del_dialog_complete_event",
	EvtTWTPauseDialogComplete:  "twt_pause_dialog_complete_event",
	EvtTWTResumeDialogComplete: "twt_resume_dialog_complete_event",
	// Motion detection
	CmdMotionDetConfigParam:         "motion_det_config_param",
	CmdMotionDetBaseLineConfigParam: "motion_det_base_line_config_param",
	CmdMotionDetStartStop:           "motion_det_start_stop",
	CmdMotionDetBaseLineStartStop:   "motion_det_base_line_start_stop",
	EvtMotionDetHost:                "motion_det_host_event",
	EvtMotionDetBaseLineHost:        "motion_det_base_line_host_event",
}

//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

// Array tags. Each names one semantic list, whatever message carries it.
const (
	TagChanList Tag = TagFirstArray + iota
	TagChannelList
	TagSSIDList
	TagBSSIDList
	TagMACList
	TagIEData
	TagBufp
	TagData
	TagArgs
	TagVdevIDs
	TagRateSet
	TagHTRateSet
	TagVHTRateSet
	TagHERateSet
	TagTxrxStreams
	TagHostMemChunks
	TagBandToMAC
	TagMemReqs
	TagHalRegCaps
	TagHWModeCaps
	TagMACPhyCaps
	TagServiceBitmap
	TagExtServiceBitmap
	TagWMMParams
	TagDSCPTIDMap
	TagNoADescriptors
	TagTIMInfo
	TagNoAInfo
	TagKeyData
	TagCTLTable
	TagFIPSData
	TagPattern
	TagBitmask
	TagWoWBitmapPatterns
	TagIPv4Sync
	TagIPv6Sync
	TagMagicPatterns
	TagPatternTimeouts
	TagWakePacket
	TagNSTuples
	TagARPTuples
	TagNSExtTuples
	TagReplayCounter
	TagKCK
	TagKEK
	TagPdevStats
	TagVdevStats
	TagPeerStats
	TagBcnStats
	TagRSSIStats
	TagChanStats
	TagMIBStats
	TagPeerExtdStats
	TagRadioStats
	TagRateStats
	TagIfaceStats
	TagACStats
	TagPeerLinkStats
	TagNLONetworks
	TagPasspointNetworks
	TagPhyErrData
	TagSpectralBins
	TagRTTRequests
	TagRTTReports
	TagExtscanBuckets
	TagExtscanChannels
	TagHotlistEntries
	TagWlanChangeEntries
	TagExtscanResults
	TagRSSIList
	TagBPFProgram
	TagOUIList
	TagRegRules
	TagTPCRates
	TagNFValues
	TagTemperatures
	TagAntennaGains
	TagTxChainMasks
	TagRatemaskWords
	TagMCCQuota
	TagLatencyList
	TagCoexParams
	TagAntIsolation
	TagTWTParams
	TagMDThresholds
	TagTSFReports
	TagARPCounters
	TagKeyRSC
	TagPMKIDs
	TagRICData
	TagWakeReasons
	TagPktRouting
	TagDCSStats
	TagEchoData
	TagDebugPayload
	TagAssocIE
	TagBeaconIE
	TagProbeIE
	TagModuleIDs
	TagConfigValues
)

// Structure tags: records shared by several messages,
// then the fixed parameter block of every builtin message.
const (
	TagChannel Tag = TagFirstStruct + iota
	TagResourceConfig
	TagABIVersion
	TagAPProfile
	TagRoamOffload
	TagRoam11iOffload
	TagRoam11rOffload
	TagRoamESEOffload
	TagTDLSPeerCaps
	TagBcnPrbInfo
	TagP2PNoAInfo
	TagNLOChannelPrediction
	TagHWModeConfig
	TagScanFilter
	TagRoamRSSICfg
	TagOCBSched

	// Start up
	TagInitCmd
	TagServiceReadyEvent
	TagReadyEvent
	TagServiceAvailableEvent
	TagServiceReadyExtEvent
	TagServiceReadyExt2Event

	// Scan
	TagStartScanCmd
	TagStopScanCmd
	TagScanChanListCmd
	TagScanSchPrioTblCmd
	TagScanUpdateRequestCmd
	TagScanProbReqOUICmd
	TagScanAdaptiveDwellConfigCmd
	TagScanDBSDutyCycleCmd
	TagScanEvent
	TagScanChanInfoEvent
	TagScanRSSILookupEvent

	// Physical device
	TagPdevSetRegdomainCmd
	TagPdevSetChannelCmd
	TagPdevSetParamCmd
	TagPdevPktlogEnableCmd
	TagPdevPktlogDisableCmd
	TagPdevSetWMMParamsCmd
	TagPdevSetHTCapIECmd
	TagPdevSetVHTCapIECmd
	TagPdevSetDSCPTIDMapCmd
	TagPdevSetQuietModeCmd
	TagPdevGreenAPPsEnableCmd
	TagPdevGetTPCConfigCmd
	TagPdevSetBaseMacaddrCmd
	TagPdevDumpCmd
	TagPdevSetLEDConfigCmd
	TagPdevGetTemperatureCmd
	TagPdevSetLEDFlashingCmd
	TagPdevSmartAntEnableCmd
	TagPdevSmartAntSetRxAntennaCmd
	TagPdevSetAntennaSwitchTableCmd
	TagPdevSetCTLTableCmd
	TagPdevSetMimogainTableCmd
	TagPdevFIPSCmd
	TagPdevGetANICckConfigCmd
	TagPdevGetANIOfdmConfigCmd
	TagPdevGetNFCalPowerCmd
	TagPdevGetTPCCmd
	TagPdevSetHWModeCmd
	TagPdevSetMACConfigCmd
	TagPdevSetWakeupConfigCmd
	TagPdevGetAntdivStatusCmd
	TagPdevGetChipPowerStatsCmd
	TagPdevSetStatsThresholdCmd
	TagPdevMultipleVdevRestartRequestCmd
	TagPdevUpdatePktRoutingCmd
	TagPdevCheckCalVersionCmd
	TagPdevSetDiversityGainCmd
	TagPdevDivRSSIAntidCmd
	TagPdevBSSChanInfoRequestCmd
	TagPdevUpdatePMKCacheCmd
	TagPdevUpdateFILSHLPPktCmd
	TagPdevSetACTxQueueOptimizedCmd
	TagPdevSetRxFilterPromiscuousCmd
	TagPdevDMARingCfgCmd
	TagPdevSetTxChainmaskCmd
	TagPdevResumeCmd
	TagPdevSuspendCmd
	TagPdevTPCConfigEvent
	TagChanInfoEvent
	TagPhyErrEvent
	TagPdevFTMIntgEvent
	TagPdevTemperatureEvent
	TagPdevANICckLevelEvent
	TagPdevANIOfdmLevelEvent
	TagPdevNFCalPowerAllChannelsEvent
	TagPdevTPCEvent
	TagPdevSetHWModeRespEvent
	TagPdevHWModeTransitionEvent
	TagPdevSetMACConfigRespEvent
	TagPdevCSASwitchCountStatusEvent
	TagPdevCheckCalVersionEvent
	TagPdevChipPowerStatsEvent
	TagPdevBSSChanInfoEvent
	TagPdevAntdivStatusEvent
	TagPdevDivRSSIAntidEvent
	TagPdevDMARingBufReleaseEvent
	TagPdevResumeEvent

	// Virtual device
	TagVdevCreateCmd
	TagVdevDeleteCmd
	TagVdevStartRequestCmd
	TagVdevRestartRequestCmd
	TagVdevUpCmd
	TagVdevStopCmd
	TagVdevDownCmd
	TagVdevSetParamCmd
	TagVdevInstallKeyCmd
	TagVdevWNMSleepmodeCmd
	TagVdevWMMAddtsCmd
	TagVdevWMMDeltsCmd
	TagVdevSetWMMParamsCmd
	TagVdevSetGTXParamsCmd
	TagVdevIPsecNATKeepaliveFilterCmd
	TagVdevPLMReqStartCmd
	TagVdevPLMReqStopCmd
	TagVdevTSFTstampActionCmd
	TagVdevSetIECmd
	TagVdevRatemaskCmd
	TagVdevSetNACRSSICmd
	TagVdevSetQuietModeCmd
	TagVdevSetCustomAggrSizeCmd
	TagVdevEncryptDecryptDataReqCmd
	TagVdevAddMACAddrToRxFilterCmd
	TagVdevSetARPStatsCmd
	TagVdevGetARPStatsCmd
	TagVdevGetTxPowerCmd
	TagVdevSetDSCPTIDMapCmd
	TagVdevSetKeepaliveCmd
	TagVdevGetKeepaliveCmd
	TagVdevSpectralScanConfigureCmd
	TagVdevSpectralScanEnableCmd
	TagBcnTmplCmd
	TagPrbTmplCmd
	TagVdevLimitOffchanCmd
	TagVdevSetPCLCmd
	TagVdevGetMWSCoexInfoCmd
	TagVdevStartRespEvent
	TagVdevStoppedEvent
	TagVdevInstallKeyCompleteEvent
	TagVdevMCCBcnIntervalChangeReqEvent
	TagVdevTSFReportEvent
	TagVdevDeleteRespEvent
	TagVdevEncryptDecryptDataRespEvent
	TagVdevGetARPStatRespEvent
	TagVdevGetTxPowerRespEvent
	TagVdevGetKeepaliveRespEvent
	TagVdevBcnReceptionStatsEvent
	TagVdevMgmtOffloadEvent
	TagVdevDisconnectEvent

	// Peer
	TagPeerCreateCmd
	TagPeerDeleteCmd
	TagPeerFlushTidsCmd
	TagPeerSetParamCmd
	TagPeerAssocCmd
	TagPeerAddWDSEntryCmd
	TagPeerRemoveWDSEntryCmd
	TagPeerMcastGroupCmd
	TagPeerInfoReqCmd
	TagPeerGetEstimatedLinkspeedCmd
	TagPeerSetRateReportConditionCmd
	TagPeerUpdateWDSEntryCmd
	TagPeerAddProxyStaEntryCmd
	TagPeerSmartAntSetTxAntennaCmd
	TagPeerSmartAntSetTrainInfoCmd
	TagPeerSmartAntSetNodeConfigOpsCmd
	TagPeerATFRequestCmd
	TagPeerBWFRequestCmd
	TagPeerReorderQueueSetupCmd
	TagPeerReorderQueueRemoveCmd
	TagPeerSetRxBlocksizeCmd
	TagPeerAntdivInfoReqCmd
	TagPeerUnmapResponseCmd
	TagPeerTIDConfigurationsCmd
	TagPeerStaKickoutEvent
	TagPeerInfoEvent
	TagPeerEstimatedLinkspeedEvent
	TagPeerStateEvent
	TagPeerAssocConfEvent
	TagPeerDeleteRespEvent
	TagPeerAntdivInfoEvent
	TagPeerCreateConfEvent
	TagPeerTxFailCntThrEvent
	TagPeerOperModeChangeEvent

	// Management frames
	TagMgmtTxCmd
	TagMgmtTxSendCmd
	TagOffchanDataTxSendCmd
	TagBcnOffloadCtrlCmd
	TagPrbRespTmplCmd
	TagFDTmplCmd
	TagBcnSendFromHostCmd
	TagMgmtRxEvent
	TagHostSWBAEvent
	TagTBTTOffsetUpdateEvent
	TagOffloadBcnTxStatusEvent
	TagOffloadProbRespTxStatusEvent
	TagMgmtTxCompletionEvent
	TagTBTTOffsetExtUpdateEvent
	TagOffchanDataTxCompletionEvent
	TagMgmtTxBundleCompletionEvent

	// Block ack negotiation
	TagAddBAClearRespCmd
	TagAddBASendCmd
	TagDelBASendCmd
	TagAddBASetRespCmd
	TagSendSingleAMSDUCmd
	TagTxDelBACompleteEvent
	TagTxAddBACompleteEvent
	TagBARspSSNEvent
	TagAggrStateTrigEvent

	// Station power save
	TagStaPowersaveModeCmd
	TagStaPowersaveParamCmd
	TagStaMimoPsModeCmd
	TagAPPsPeerParamCmd
	TagAPPsPeerUAPSDCoexCmd
	TagAPPsEGAPParamCmd
	TagAPPsEGAPInfoEvent
	TagStaPsWakeReasonEvent

	// DFS
	TagPdevDFSEnableCmd
	TagPdevDFSDisableCmd
	TagDFSPhyErrFilterEnaCmd
	TagDFSPhyErrFilterDisCmd
	TagPdevDFSPhyErrOffloadEnableCmd
	TagPdevDFSPhyErrOffloadDisableCmd
	TagVdevADFSChCfgCmd
	TagVdevADFSOCACAbortCmd
	TagDFSRadarDetectionEvent
	TagVdevDFSCACCompleteEvent
	TagVdevADFSOCACCompleteEvent
	TagDFSRadarFoundEvent

	// Roaming
	TagRoamScanModeCmd
	TagRoamScanRSSIThresholdCmd
	TagRoamScanPeriodCmd
	TagRoamScanRSSIChangeThresholdCmd
	TagRoamAPProfileCmd
	TagRoamChanListCmd
	TagRoamScanCmdCmd
	TagRoamSynchCompleteCmd
	TagRoamSetRICRequestCmd
	TagRoamInvokeCmd
	TagRoamFilterCmd
	TagRoamSubnetChangeConfigCmd
	TagRoamConfigureMAWCCmd
	TagRoamSetMBOParamCmd
	TagRoamPERConfigCmd
	TagRoamBSSLoadConfigCmd
	TagRoamDeauthConfigCmd
	TagRoamIdleConfigCmd
	TagRoamPreauthStatusCmd
	TagRoamEvent
	TagRoamSynchEvent
	TagRoamScanStatsEvent
	TagRoamPreauthStartEvent
	TagRoamPmkidRequestEvent

	// OCB and other offloads
	TagOCBSetConfigCmd
	TagOCBSetUtcTimeCmd
	TagOCBStartTimingAdvertCmd
	TagOCBStopTimingAdvertCmd
	TagOCBGetTSFTimerCmd
	TagDCCGetStatsCmd
	TagDCCClearStatsCmd
	TagDCCUpdateNDLCmd
	TagRSSIBreachMonitorConfigCmd
	TagLPIStartScanCmd
	TagLPIStopScanCmd
	TagLPIMgmtSnoopingConfigCmd
	TagOCBSetConfigRespEvent
	TagOCBGetTSFTimerRespEvent
	TagDCCGetStatsRespEvent
	TagDCCUpdateNDLRespEvent
	TagDCCStatsEvent
	TagRSSIBreachEvent
	TagLPIResultEvent
	TagLPIStatusEvent

	// Wake on wireless
	TagWoWAddWakePatternCmd
	TagWoWDelWakePatternCmd
	TagWoWEnableDisableWakeEventCmd
	TagWoWEnableCmd
	TagWoWHostwakeupFromSleepCmd
	TagWoWIOACAddKeepaliveCmd
	TagWoWIOACDelKeepaliveCmd
	TagWoWIOACAddWakePatternCmd
	TagWoWIOACDelWakePatternCmd
	TagD0WoWEnableDisableCmd
	TagExtWoWEnableCmd
	TagExtWoWSetAppType1ParamsCmd
	TagExtWoWSetAppType2ParamsCmd
	TagWoWEnableICMPv6NaFltCmd
	TagWoWUDPSvcOfldCmd
	TagWoWHostwakeupGPIOPinPatternConfigCmd
	TagWoWSetActionWakeUpCmd
	TagWoWWakeupHostEvent
	TagWoWInitialWakeupEvent

	// RTT and OEM
	TagRTTMeasreqCmd
	TagRTTTSFCmd
	TagOEMReqCmd
	TagRTTMeasurementReportEvent
	TagRTTErrorReportEvent
	TagOEMCapabilityEvent
	TagOEMMeasurementReportEvent
	TagOEMErrorReportEvent
	TagOEMResponseEvent

	// Spectral scan
	TagSpectralScanConfCmd
	TagSpectralScanEnableCmd
	TagSpectralScanReportEvent

	// Statistics
	TagRequestStatsCmd
	TagMCCSchedTrafficStatsCmd
	TagRequestLinkStatsCmd
	TagClearLinkStatsCmd
	TagStartLinkStatsCmd
	TagRequestStatsExtCmd
	TagRequestPeerStatsInfoCmd
	TagRequestRadioChanStatsCmd
	TagRequestWLMStatsCmd
	TagRequestRCPICmd
	TagRequestBcnStatsCmd
	TagRequestPeerStatsInfoExtCmd
	TagUpdateStatsEvent
	TagIfaceLinkStatsEvent
	TagPeerLinkStatsEvent
	TagRadioLinkStatsEvent
	TagUpdateFWMemDumpEvent
	TagStatsExtEvent
	TagPeerStatsInfoEvent
	TagRadioChanStatsEvent
	TagRCPIInfoEvent
	TagWLMStatsEvent
	TagUpdateRSSIInfoEvent
	TagReportStatsEvent

	// ARP and NS offload
	TagSetARPNSOffloadCmd
	TagAddProactiveARPRspPatternCmd
	TagDelProactiveARPRspPatternCmd

	// Network list offload
	TagNetworkListOffloadConfigCmd
	TagApfindCmd
	TagPasspointListConfigCmd
	TagNLOConfigRSSIParamsCmd
	TagNLOMatchEvent
	TagNLOScanCompleteEvent
	TagApfindEvent
	TagPasspointMatchEvent

	// GTK offload
	TagGTKOffloadCmd
	TagGTKOffloadGetInfoCmd
	TagGTKOffloadStatusEvent
	TagGTKRekeyFailEvent

	// Checksum offload
	TagVdevSetCsumOffloadCmd

	// Chatter mode
	TagChatterSetModeCmd
	TagChatterAddCoalescingFilterCmd
	TagChatterDeleteCoalescingFilterCmd
	TagChatterCoalescingQueryCmd
	TagChatterPCQueryEvent

	// TID
	TagPeerTIDAddBACmd
	TagPeerTIDDelBACmd
	TagStaDTIMPsMethodCmd
	TagStaUAPSDAutoTrigCmd
	TagStaKeepaliveCmd

	// Station vdev
	TagVdevStaBATimeoutCmd
	TagVdevStaSMPSForceModeCmd
	TagVdevStaSMPSParamCmd
	TagStaSMPSForceModeCompleteEvent

	// Miscellaneous
	TagEchoCmd
	TagPdevUTFCmd
	TagDbgLogCfgCmd
	TagPdevQVITCmd
	TagFwtestVdevMCCSetTBTTModeCmd
	TagVdevSetKeepaliveV2Cmd
	TagForceFWHangCmd
	TagSetMcastBcastFilterCmd
	TagDbgLogTimeStampSyncCmd
	TagSetMultipleMcastFilterCmd
	TagGetFWMemDumpCmd
	TagDebugMesgFlushCmd
	TagDiagEventLogConfigCmd
	TagSetCurrentCountryCmd
	TagSetInitCountryCmd
	TagSet11dCountryCmd
	TagRequestWlanStatsCmd
	TagRequestRSSICmd
	TagPdevGetNFCalPowerExtCmd
	TagSetFWDebugTSFCmd
	TagUnitTestCmd
	TagEchoEvent
	TagPdevUTFEvent
	TagDebugMessageEvent
	TagDebugPrintEvent
	TagDCSInterferenceEvent
	TagPdevQVITEvent
	TagWlanProfileDataEvent
	TagDebugMesgFlushCompleteEvent
	TagDiagEventLogSupportedEvent
	TagRegChanListCcEvent
	TagNewCountry11dEvent
	TagUpdateWHALMIBStatsEvent

	// GPIO
	TagGPIOConfigCmd
	TagGPIOOutputCmd
	TagGPIOInputEvent

	// Firmware test
	TagFwtestP2PSetOppPSParamCmd
	TagFwtestUnitTestCmd
	TagFwtestNANTestCmd
	TagFwtestUnitTestEvent

	// TDLS
	TagTDLSSetStateCmd
	TagTDLSPeerUpdateCmd
	TagTDLSSetOffchanModeCmd
	TagTDLSPeerEvent

	// Resource manager
	TagResmgrAdaptiveOcsEnDisCmd
	TagResmgrSetChanTimeQuotaCmd
	TagResmgrSetChanLatencyCmd
	TagResmgrChanTimeQuotaEvent

	// P2P
	TagP2PDevSetDeviceInfoCmd
	TagP2PDevSetDiscoverabilityCmd
	TagP2PGoSetBeaconIECmd
	TagP2PGoSetProbeRespIECmd
	TagP2PSetVendorIEDataCmd
	TagP2PDiscOffloadConfigCmd
	TagP2PDiscOffloadAppIECmd
	TagP2PDiscOffloadPatternCmd
	TagP2PSetNoACmd
	TagP2PSetOppPSCmd
	TagP2PListenOffloadStartCmd
	TagP2PListenOffloadStopCmd
	TagP2PNoAEvent
	TagP2PDiscReportEvent
	TagP2PListenOffloadStoppedEvent
	TagP2PLOStopEvent

	// Beacon filter
	TagAddBcnFilterCmd
	TagRmvBcnFilterCmd
	TagBcnFilterRxCmd

	// Extended scan
	TagExtscanStartCmd
	TagExtscanStopCmd
	TagExtscanConfigureWlanChangeMonitorCmd
	TagExtscanConfigureHotlistMonitorCmd
	TagExtscanGetCachedResultsCmd
	TagExtscanGetWlanChangeResultsCmd
	TagExtscanSetCapabilitiesCmd
	TagExtscanGetCapabilitiesCmd
	TagExtscanConfigureHotlistSSIDMonitorCmd
	TagExtscanStartStopEvent
	TagExtscanOperationEvent
	TagExtscanTableUsageEvent
	TagExtscanCachedResultsEvent
	TagExtscanWlanChangeResultsEvent
	TagExtscanHotlistMatchEvent
	TagExtscanCapabilitiesEvent
	TagExtscanHotlistSSIDMatchEvent

	// Coexistence
	TagCoexConfigCmd
	TagCoexGetAntennaIsolationCmd
	TagChanAvoidUpdateCmd
	TagCoexAntennaIsolationEvent
	TagChanAvoidEvent

	// Packet filter
	TagBPFGetCapabilityCmd
	TagBPFGetVdevStatsCmd
	TagBPFSetVdevInstructionsCmd
	TagBPFDelVdevInstructionsCmd
	TagBPFSetVdevActiveModeCmd
	TagBPFSetVdevEnableCmd
	TagBPFSetVdevWorkMemoryCmd
	TagBPFGetVdevWorkMemoryCmd
	TagBPFCapabilityInfoEvent
	TagBPFVdevStatsEvent
	TagBPFGetVdevWorkMemoryRespEvent

	// Target wake time
	TagTWTEnableCmd
	TagTWTDisableCmd
	TagTWTAddDialogCmd
	TagTWTDelDialogCmd
	TagTWTPauseDialogCmd
	TagTWTResumeDialogCmd
	TagTWTEnableCompleteEvent
	TagTWTDisableCompleteEvent
	TagTWTAddDialogCompleteEvent
	TagTWTDelDialogCompleteEvent
	TagTWTPauseDialogCompleteEvent
	TagTWTResumeDialogCompleteEvent

	// Motion detection
	TagMotionDetConfigParamCmd
	TagMotionDetBaseLineConfigParamCmd
	TagMotionDetStartStopCmd
	TagMotionDetBaseLineStartStopCmd
	TagMotionDetHostEvent
	TagMotionDetBaseLineHostEvent
)

var tagNames = map[Tag]string{
	TagChanList:                              "chan_list",
	TagChannelList:                           "channel_list",
	TagSSIDList:                              "ssid_list",
	TagBSSIDList:                             "bssid_list",
	TagMACList:                               "mac_list",
	TagIEData:                                "ie_data",
	TagBufp:                                  "bufp",
	TagData:                                  "data",
	TagArgs:                                  "args",
	TagVdevIDs:                               "vdev_ids",
	TagRateSet:                               "rate_set",
	TagHTRateSet:                             "ht_rate_set",
	TagVHTRateSet:                            "vht_rate_set",
	TagHERateSet:                             "he_rate_set",
	TagTxrxStreams:                           "txrx_streams",
	TagHostMemChunks:                         "host_mem_chunks",
	TagBandToMAC:                             "band_to_mac",
	TagMemReqs:                               "mem_reqs",
	TagHalRegCaps:                            "hal_reg_caps",
	TagHWModeCaps:                            "hw_mode_caps",
	TagMACPhyCaps:                            "mac_phy_caps",
	TagServiceBitmap:                         "service_bitmap",
	TagExtServiceBitmap:                      "ext_service_bitmap",
	TagWMMParams:                             "wmm_params",
	TagDSCPTIDMap:                            "dscp_tid_map",
	TagNoADescriptors:                        "noa_descriptors",
	TagTIMInfo:                               "tim_info",
	TagNoAInfo:                               "noa_info",
	TagKeyData:                               "key_data",
	TagCTLTable:                              "ctl_table",
	TagFIPSData:                              "fips_data",
	TagPattern:                               "pattern",
	TagBitmask:                               "bitmask",
	TagWoWBitmapPatterns:                     "wow_bitmap_patterns",
	TagIPv4Sync:                              "ipv4_sync",
	TagIPv6Sync:                              "ipv6_sync",
	TagMagicPatterns:                         "magic_patterns",
	TagPatternTimeouts:                       "pattern_timeouts",
	TagWakePacket:                            "wake_packet",
	TagNSTuples:                              "ns_tuples",
	TagARPTuples:                             "arp_tuples",
	TagNSExtTuples:                           "ns_ext_tuples",
	TagReplayCounter:                         "replay_counter",
	TagKCK:                                   "kck",
	TagKEK:                                   "kek",
	TagPdevStats:                             "pdev_stats",
	TagVdevStats:                             "vdev_stats",
	TagPeerStats:                             "peer_stats",
	TagBcnStats:                              "bcn_stats",
	TagRSSIStats:                             "rssi_stats",
	TagChanStats:                             "chan_stats",
	TagMIBStats:                              "mib_stats",
	TagPeerExtdStats:                         "peer_extd_stats",
	TagRadioStats:                            "radio_stats",
	TagRateStats:                             "rate_stats",
	TagIfaceStats:                            "iface_stats",
	TagACStats:                               "ac_stats",
	TagPeerLinkStats:                         "peer_link_stats",
	TagNLONetworks:                           "nlo_networks",
	TagPasspointNetworks:                     "passpoint_networks",
	TagPhyErrData:                            "phyerr_data",
	TagSpectralBins:                          "spectral_bins",
	TagRTTRequests:                           "rtt_requests",
	TagRTTReports:                            "rtt_reports",
	TagExtscanBuckets:                        "extscan_buckets",
	TagExtscanChannels:                       "extscan_channels",
	TagHotlistEntries:                        "hotlist_entries",
	TagWlanChangeEntries:                     "wlan_change_entries",
	TagExtscanResults:                        "extscan_results",
	TagRSSIList:                              "rssi_list",
	TagBPFProgram:                            "bpf_program",
	TagOUIList:                               "oui_list",
	TagRegRules:                              "reg_rules",
	TagTPCRates:                              "tpc_rates",
	TagNFValues:                              "nf_values",
	TagTemperatures:                          "temperatures",
	TagAntennaGains:                          "antenna_gains",
	TagTxChainMasks:                          "tx_chain_masks",
	TagRatemaskWords:                         "ratemask_words",
	TagMCCQuota:                              "mcc_quota",
	TagLatencyList:                           "latency_list",
	TagCoexParams:                            "coex_params",
	TagAntIsolation:                          "ant_isolation",
	TagTWTParams:                             "twt_params",
	TagMDThresholds:                          "md_thresholds",
	TagTSFReports:                            "tsf_reports",
	TagARPCounters:                           "arp_counters",
	TagKeyRSC:                                "key_rsc",
	TagPMKIDs:                                "pmk_ids",
	TagRICData:                               "ric_data",
	TagWakeReasons:                           "wake_reasons",
	TagPktRouting:                            "pkt_routing",
	TagDCSStats:                              "dcs_stats",
	TagEchoData:                              "echo_data",
	TagDebugPayload:                          "debug_payload",
	TagAssocIE:                               "assoc_ie",
	TagBeaconIE:                              "beacon_ie",
	TagProbeIE:                               "probe_ie",
	TagModuleIDs:                             "module_ids",
	TagConfigValues:                          "config_values",
	TagChannel:                               "channel",
	TagResourceConfig:                        "resource_config",
	TagABIVersion:                            "abi_version",
	TagAPProfile:                             "ap_profile",
	TagRoamOffload:                           "roam_offload",
	TagRoam11iOffload:                        "roam_11i_offload",
	TagRoam11rOffload:                        "roam_11r_offload",
	TagRoamESEOffload:                        "roam_ese_offload",
	TagTDLSPeerCaps:                          "tdls_peer_caps",
	TagBcnPrbInfo:                            "bcn_prb_info",
	TagP2PNoAInfo:                            "p2p_noa_info",
	TagNLOChannelPrediction:                  "nlo_channel_prediction",
	TagHWModeConfig:                          "hw_mode_config",
	TagScanFilter:                            "scan_filter",
	TagRoamRSSICfg:                           "roam_rssi_cfg",
	TagOCBSched:                              "ocb_sched",
	TagInitCmd:                               "init_cmd_fixed_param",
	TagServiceReadyEvent:                     "service_ready_event_fixed_param",
	TagReadyEvent:                            "ready_event_fixed_param",
	TagServiceAvailableEvent:                 "service_available_event_fixed_param",
	TagServiceReadyExtEvent:                  "service_ready_ext_event_fixed_param",
	TagServiceReadyExt2Event:                 "service_ready_ext2_event_fixed_param",
	TagStartScanCmd:                          "start_scan_cmd_fixed_param",
	TagStopScanCmd:                           "stop_scan_cmd_fixed_param",
	TagScanChanListCmd:                       "scan_chan_list_cmd_fixed_param",
	TagScanSchPrioTblCmd:                     "scan_sch_prio_tbl_cmd_fixed_param",
	TagScanUpdateRequestCmd:                  "scan_update_request_cmd_fixed_param",
	TagScanProbReqOUICmd:                     "scan_prob_req_oui_cmd_fixed_param",
	TagScanAdaptiveDwellConfigCmd:            "scan_adaptive_dwell_config_cmd_fixed_param",
	TagScanDBSDutyCycleCmd:                   "scan_dbs_duty_cycle_cmd_fixed_param",
	TagScanEvent:                             "scan_event_fixed_param",
	TagScanChanInfoEvent:                     "scan_chan_info_event_fixed_param",
	TagScanRSSILookupEvent:                   "scan_rssi_lookup_event_fixed_param",
	TagPdevSetRegdomainCmd:                   "pdev_set_regdomain_cmd_fixed_param",
	TagPdevSetChannelCmd:                     "pdev_set_channel_cmd_fixed_param",
	TagPdevSetParamCmd:                       "pdev_set_param_cmd_fixed_param",
	TagPdevPktlogEnableCmd:                   "pdev_pktlog_enable_cmd_fixed_param",
	TagPdevPktlogDisableCmd:                  "pdev_pktlog_disable_cmd_fixed_param",
	TagPdevSetWMMParamsCmd:                   "pdev_set_wmm_params_cmd_fixed_param",
	TagPdevSetHTCapIECmd:                     "pdev_set_ht_cap_ie_cmd_fixed_param",
	TagPdevSetVHTCapIECmd:                    "pdev_set_vht_cap_ie_cmd_fixed_param",
	TagPdevSetDSCPTIDMapCmd:                  "pdev_set_dscp_tid_map_cmd_fixed_param",
	TagPdevSetQuietModeCmd:                   "pdev_set_quiet_mode_cmd_fixed_param",
	TagPdevGreenAPPsEnableCmd:                "pdev_green_ap_ps_enable_cmd_fixed_param",
	TagPdevGetTPCConfigCmd:                   "pdev_get_tpc_config_cmd_fixed_param",
	TagPdevSetBaseMacaddrCmd:                 "pdev_set_base_macaddr_cmd_fixed_param",
	TagPdevDumpCmd:                           "pdev_dump_cmd_fixed_param",
	TagPdevSetLEDConfigCmd:                   "pdev_set_led_config_cmd_fixed_param",
	TagPdevGetTemperatureCmd:                 "pdev_get_temperature_cmd_fixed_param",
	TagPdevSetLEDFlashingCmd:                 "pdev_set_led_flashing_cmd_fixed_param",
	TagPdevSmartAntEnableCmd:                 "pdev_smart_ant_enable_cmd_fixed_param",
	TagPdevSmartAntSetRxAntennaCmd:           "pdev_smart_ant_set_rx_antenna_cmd_fixed_param",
	TagPdevSetAntennaSwitchTableCmd:          "pdev_set_antenna_switch_table_cmd_fixed_param",
	TagPdevSetCTLTableCmd:                    "pdev_set_ctl_table_cmd_fixed_param",
	TagPdevSetMimogainTableCmd:               "pdev_set_mimogain_table_cmd_fixed_param",
	TagPdevFIPSCmd:                           "pdev_fips_cmd_fixed_param",
	TagPdevGetANICckConfigCmd:                "pdev_get_ani_cck_config_cmd_fixed_param",
	TagPdevGetANIOfdmConfigCmd:               "pdev_get_ani_ofdm_config_cmd_fixed_param",
	TagPdevGetNFCalPowerCmd:                  "pdev_get_nfcal_power_cmd_fixed_param",
	TagPdevGetTPCCmd:                         "pdev_get_tpc_cmd_fixed_param",
	TagPdevSetHWModeCmd:                      "pdev_set_hw_mode_cmd_fixed_param",
	TagPdevSetMACConfigCmd:                   "pdev_set_mac_config_cmd_fixed_param",
	TagPdevSetWakeupConfigCmd:                "pdev_set_wakeup_config_cmd_fixed_param",
	TagPdevGetAntdivStatusCmd:                "pdev_get_antdiv_status_cmd_fixed_param",
	TagPdevGetChipPowerStatsCmd:              "pdev_get_chip_power_stats_cmd_fixed_param",
	TagPdevSetStatsThresholdCmd:              "pdev_set_stats_threshold_cmd_fixed_param",
	TagPdevMultipleVdevRestartRequestCmd:     "pdev_multiple_vdev_restart_request_cmd_fixed_param",
	TagPdevUpdatePktRoutingCmd:               "pdev_update_pkt_routing_cmd_fixed_param",
	TagPdevCheckCalVersionCmd:                "pdev_check_cal_version_cmd_fixed_param",
	TagPdevSetDiversityGainCmd:               "pdev_set_diversity_gain_cmd_fixed_param",
	TagPdevDivRSSIAntidCmd:                   "pdev_div_rssi_antid_cmd_fixed_param",
	TagPdevBSSChanInfoRequestCmd:             "pdev_bss_chan_info_request_cmd_fixed_param",
	TagPdevUpdatePMKCacheCmd:                 "pdev_update_pmk_cache_cmd_fixed_param",
	TagPdevUpdateFILSHLPPktCmd:               "pdev_update_fils_hlp_pkt_cmd_fixed_param",
	TagPdevSetACTxQueueOptimizedCmd:          "pdev_set_ac_tx_queue_optimized_cmd_fixed_param",
	TagPdevSetRxFilterPromiscuousCmd:         "pdev_set_rx_filter_promiscuous_cmd_fixed_param",
	TagPdevDMARingCfgCmd:                     "pdev_dma_ring_cfg_cmd_fixed_param",
	TagPdevSetTxChainmaskCmd:                 "pdev_set_tx_chainmask_cmd_fixed_param",
	TagPdevResumeCmd:                         "pdev_resume_cmd_fixed_param",
	TagPdevSuspendCmd:                        "pdev_suspend_cmd_fixed_param",
	TagPdevTPCConfigEvent:                    "pdev_tpc_config_event_fixed_param",
	TagChanInfoEvent:                         "chan_info_event_fixed_param",
	TagPhyErrEvent:                           "phyerr_event_fixed_param",
	TagPdevFTMIntgEvent:                      "pdev_ftm_intg_event_fixed_param",
	TagPdevTemperatureEvent:                  "pdev_temperature_event_fixed_param",
	TagPdevANICckLevelEvent:                  "pdev_ani_cck_level_event_fixed_param",
	TagPdevANIOfdmLevelEvent:                 "pdev_ani_ofdm_level_event_fixed_param",
	TagPdevNFCalPowerAllChannelsEvent:        "pdev_nfcal_power_all_channels_event_fixed_param",
	TagPdevTPCEvent:                          "pdev_tpc_event_fixed_param",
	TagPdevSetHWModeRespEvent:                "pdev_set_hw_mode_resp_event_fixed_param",
	TagPdevHWModeTransitionEvent:             "pdev_hw_mode_transition_event_fixed_param",
	TagPdevSetMACConfigRespEvent:             "pdev_set_mac_config_resp_event_fixed_param",
	TagPdevCSASwitchCountStatusEvent:         "pdev_csa_switch_count_status_event_fixed_param",
	TagPdevCheckCalVersionEvent:              "pdev_check_cal_version_event_fixed_param",
	TagPdevChipPowerStatsEvent:               "pdev_chip_power_stats_event_fixed_param",
	TagPdevBSSChanInfoEvent:                  "pdev_bss_chan_info_event_fixed_param",
	TagPdevAntdivStatusEvent:                 "pdev_antdiv_status_event_fixed_param",
	TagPdevDivRSSIAntidEvent:                 "pdev_div_rssi_antid_event_fixed_param",
	TagPdevDMARingBufReleaseEvent:            "pdev_dma_ring_buf_release_event_fixed_param",
	TagPdevResumeEvent:                       "pdev_resume_event_fixed_param",
	TagVdevCreateCmd:                         "vdev_create_cmd_fixed_param",
	TagVdevDeleteCmd:                         "vdev_delete_cmd_fixed_param",
	TagVdevStartRequestCmd:                   "vdev_start_request_cmd_fixed_param",
	TagVdevRestartRequestCmd:                 "vdev_restart_request_cmd_fixed_param",
	TagVdevUpCmd:                             "vdev_up_cmd_fixed_param",
	TagVdevStopCmd:                           "vdev_stop_cmd_fixed_param",
	TagVdevDownCmd:                           "vdev_down_cmd_fixed_param",
	TagVdevSetParamCmd:                       "vdev_set_param_cmd_fixed_param",
	TagVdevInstallKeyCmd:                     "vdev_install_key_cmd_fixed_param",
	TagVdevWNMSleepmodeCmd:                   "vdev_wnm_sleepmode_cmd_fixed_param",
	TagVdevWMMAddtsCmd:                       "vdev_wmm_addts_cmd_fixed_param",
	TagVdevWMMDeltsCmd:                       "vdev_wmm_delts_cmd_fixed_param",
	TagVdevSetWMMParamsCmd:                   "vdev_set_wmm_params_cmd_fixed_param",
	TagVdevSetGTXParamsCmd:                   "vdev_set_gtx_params_cmd_fixed_param",
	TagVdevIPsecNATKeepaliveFilterCmd:        "vdev_ipsec_natkeepalive_filter_cmd_fixed_param",
	TagVdevPLMReqStartCmd:                    "vdev_plmreq_start_cmd_fixed_param",
	TagVdevPLMReqStopCmd:                     "vdev_plmreq_stop_cmd_fixed_param",
	TagVdevTSFTstampActionCmd:                "vdev_tsf_tstamp_action_cmd_fixed_param",
	TagVdevSetIECmd:                          "vdev_set_ie_cmd_fixed_param",
	TagVdevRatemaskCmd:                       "vdev_ratemask_cmd_fixed_param",
	TagVdevSetNACRSSICmd:                     "vdev_set_nac_rssi_cmd_fixed_param",
	TagVdevSetQuietModeCmd:                   "vdev_set_quiet_mode_cmd_fixed_param",
	TagVdevSetCustomAggrSizeCmd:              "vdev_set_custom_aggr_size_cmd_fixed_param",
	TagVdevEncryptDecryptDataReqCmd:          "vdev_encrypt_decrypt_data_req_cmd_fixed_param",
	TagVdevAddMACAddrToRxFilterCmd:           "vdev_add_mac_addr_to_rx_filter_cmd_fixed_param",
	TagVdevSetARPStatsCmd:                    "vdev_set_arp_stats_cmd_fixed_param",
	TagVdevGetARPStatsCmd:                    "vdev_get_arp_stats_cmd_fixed_param",
	TagVdevGetTxPowerCmd:                     "vdev_get_tx_power_cmd_fixed_param",
	TagVdevSetDSCPTIDMapCmd:                  "vdev_set_dscp_tid_map_cmd_fixed_param",
	TagVdevSetKeepaliveCmd:                   "vdev_set_keepalive_cmd_fixed_param",
	TagVdevGetKeepaliveCmd:                   "vdev_get_keepalive_cmd_fixed_param",
	TagVdevSpectralScanConfigureCmd:          "vdev_spectral_scan_configure_cmd_fixed_param",
	TagVdevSpectralScanEnableCmd:             "vdev_spectral_scan_enable_cmd_fixed_param",
	TagBcnTmplCmd:                            "bcn_tmpl_cmd_fixed_param",
	TagPrbTmplCmd:                            "prb_tmpl_cmd_fixed_param",
	TagVdevLimitOffchanCmd:                   "vdev_limit_offchan_cmd_fixed_param",
	TagVdevSetPCLCmd:                         "vdev_set_pcl_cmd_fixed_param",
	TagVdevGetMWSCoexInfoCmd:                 "vdev_get_mws_coex_info_cmd_fixed_param",
	TagVdevStartRespEvent:                    "vdev_start_resp_event_fixed_param",
	TagVdevStoppedEvent:                      "vdev_stopped_event_fixed_param",
	TagVdevInstallKeyCompleteEvent:           "vdev_install_key_complete_event_fixed_param",
	TagVdevMCCBcnIntervalChangeReqEvent:      "vdev_mcc_bcn_interval_change_req_event_fixed_param",
	TagVdevTSFReportEvent:                    "vdev_tsf_report_event_fixed_param",
	TagVdevDeleteRespEvent:                   "vdev_delete_resp_event_fixed_param",
	TagVdevEncryptDecryptDataRespEvent:       "vdev_encrypt_decrypt_data_resp_event_fixed_param",
	TagVdevGetARPStatRespEvent:               "vdev_get_arp_stat_resp_event_fixed_param",
	TagVdevGetTxPowerRespEvent:               "vdev_get_tx_power_resp_event_fixed_param",
	TagVdevGetKeepaliveRespEvent:             "vdev_get_keepalive_resp_event_fixed_param",
	TagVdevBcnReceptionStatsEvent:            "vdev_bcn_reception_stats_event_fixed_param",
	TagVdevMgmtOffloadEvent:                  "vdev_mgmt_offload_event_fixed_param",
	TagVdevDisconnectEvent:                   "vdev_disconnect_event_fixed_param",
	TagPeerCreateCmd:                         "peer_create_cmd_fixed_param",
	TagPeerDeleteCmd:                         "peer_delete_cmd_fixed_param",
	TagPeerFlushTidsCmd:                      "peer_flush_tids_cmd_fixed_param",
	TagPeerSetParamCmd:                       "peer_set_param_cmd_fixed_param",
	TagPeerAssocCmd:                          "peer_assoc_cmd_fixed_param",
	TagPeerAddWDSEntryCmd:                    "peer_add_wds_entry_cmd_fixed_param",
	TagPeerRemoveWDSEntryCmd:                 "peer_remove_wds_entry_cmd_fixed_param",
	TagPeerMcastGroupCmd:                     "peer_mcast_group_cmd_fixed_param",
	TagPeerInfoReqCmd:                        "peer_info_req_cmd_fixed_param",
	TagPeerGetEstimatedLinkspeedCmd:          "peer_get_estimated_linkspeed_cmd_fixed_param",
	TagPeerSetRateReportConditionCmd:         "peer_set_rate_report_condition_cmd_fixed_param",
	TagPeerUpdateWDSEntryCmd:                 "peer_update_wds_entry_cmd_fixed_param",
	TagPeerAddProxyStaEntryCmd:               "peer_add_proxy_sta_entry_cmd_fixed_param",
	TagPeerSmartAntSetTxAntennaCmd:           "peer_smart_ant_set_tx_antenna_cmd_fixed_param",
	TagPeerSmartAntSetTrainInfoCmd:           "peer_smart_ant_set_train_info_cmd_fixed_param",
	TagPeerSmartAntSetNodeConfigOpsCmd:       "peer_smart_ant_set_node_config_ops_cmd_fixed_param",
	TagPeerATFRequestCmd:                     "peer_atf_request_cmd_fixed_param",
	TagPeerBWFRequestCmd:                     "peer_bwf_request_cmd_fixed_param",
	TagPeerReorderQueueSetupCmd:              "peer_reorder_queue_setup_cmd_fixed_param",
	TagPeerReorderQueueRemoveCmd:             "peer_reorder_queue_remove_cmd_fixed_param",
	TagPeerSetRxBlocksizeCmd:                 "peer_set_rx_blocksize_cmd_fixed_param",
	TagPeerAntdivInfoReqCmd:                  "peer_antdiv_info_req_cmd_fixed_param",
	TagPeerUnmapResponseCmd:                  "peer_unmap_response_cmd_fixed_param",
	TagPeerTIDConfigurationsCmd:              "peer_tid_configurations_cmd_fixed_param",
	TagPeerStaKickoutEvent:                   "peer_sta_kickout_event_fixed_param",
	TagPeerInfoEvent:                         "peer_info_event_fixed_param",
	TagPeerEstimatedLinkspeedEvent:           "peer_estimated_linkspeed_event_fixed_param",
	TagPeerStateEvent:                        "peer_state_event_fixed_param",
	TagPeerAssocConfEvent:                    "peer_assoc_conf_event_fixed_param",
	TagPeerDeleteRespEvent:                   "peer_delete_resp_event_fixed_param",
	TagPeerAntdivInfoEvent:                   "peer_antdiv_info_event_fixed_param",
	TagPeerCreateConfEvent:                   "peer_create_conf_event_fixed_param",
	TagPeerTxFailCntThrEvent:                 "peer_tx_fail_cnt_thr_event_fixed_param",
	TagPeerOperModeChangeEvent:               "peer_oper_mode_change_event_fixed_param",
	TagMgmtTxCmd:                             "mgmt_tx_cmd_fixed_param",
	TagMgmtTxSendCmd:                         "mgmt_tx_send_cmd_fixed_param",
	TagOffchanDataTxSendCmd:                  "offchan_data_tx_send_cmd_fixed_param",
	TagBcnOffloadCtrlCmd:                     "bcn_offload_ctrl_cmd_fixed_param",
	TagPrbRespTmplCmd:                        "prb_resp_tmpl_cmd_fixed_param",
	TagFDTmplCmd:                             "fd_tmpl_cmd_fixed_param",
	TagBcnSendFromHostCmd:                    "bcn_send_from_host_cmd_fixed_param",
	TagMgmtRxEvent:                           "mgmt_rx_event_fixed_param",
	TagHostSWBAEvent:                         "host_swba_event_fixed_param",
	TagTBTTOffsetUpdateEvent:                 "tbttoffset_update_event_fixed_param",
	TagOffloadBcnTxStatusEvent:               "offload_bcn_tx_status_event_fixed_param",
	TagOffloadProbRespTxStatusEvent:          "offload_prob_resp_tx_status_event_fixed_param",
	TagMgmtTxCompletionEvent:                 "mgmt_tx_completion_event_fixed_param",
	TagTBTTOffsetExtUpdateEvent:              "tbttoffset_ext_update_event_fixed_param",
	TagOffchanDataTxCompletionEvent:          "offchan_data_tx_completion_event_fixed_param",
	TagMgmtTxBundleCompletionEvent:           "mgmt_tx_bundle_completion_event_fixed_param",
	TagAddBAClearRespCmd:                     "addba_clear_resp_cmd_fixed_param",
	TagAddBASendCmd:                          "addba_send_cmd_fixed_param",
	TagDelBASendCmd:                          "delba_send_cmd_fixed_param",
	TagAddBASetRespCmd:                       "addba_set_resp_cmd_fixed_param",
	TagSendSingleAMSDUCmd:                    "send_singleamsdu_cmd_fixed_param",
	TagTxDelBACompleteEvent:                  "tx_delba_complete_event_fixed_param",
	TagTxAddBACompleteEvent:                  "tx_addba_complete_event_fixed_param",
	TagBARspSSNEvent:                         "ba_rsp_ssn_event_fixed_param",
	TagAggrStateTrigEvent:                    "aggr_state_trig_event_fixed_param",
	TagStaPowersaveModeCmd:                   "sta_powersave_mode_cmd_fixed_param",
	TagStaPowersaveParamCmd:                  "sta_powersave_param_cmd_fixed_param",
	TagStaMimoPsModeCmd:                      "sta_mimo_ps_mode_cmd_fixed_param",
	TagAPPsPeerParamCmd:                      "ap_ps_peer_param_cmd_fixed_param",
	TagAPPsPeerUAPSDCoexCmd:                  "ap_ps_peer_uapsd_coex_cmd_fixed_param",
	TagAPPsEGAPParamCmd:                      "ap_ps_egap_param_cmd_fixed_param",
	TagAPPsEGAPInfoEvent:                     "ap_ps_egap_info_event_fixed_param",
	TagStaPsWakeReasonEvent:                  "sta_ps_wake_reason_event_fixed_param",
	TagPdevDFSEnableCmd:                      "pdev_dfs_enable_cmd_fixed_param",
	TagPdevDFSDisableCmd:                     "pdev_dfs_disable_cmd_fixed_param",
	TagDFSPhyErrFilterEnaCmd:                 "dfs_phyerr_filter_ena_cmd_fixed_param",
	TagDFSPhyErrFilterDisCmd:                 "dfs_phyerr_filter_dis_cmd_fixed_param",
	TagPdevDFSPhyErrOffloadEnableCmd:         "pdev_dfs_phyerr_offload_enable_cmd_fixed_param",
	TagPdevDFSPhyErrOffloadDisableCmd:        "pdev_dfs_phyerr_offload_disable_cmd_fixed_param",
	TagVdevADFSChCfgCmd:                      "vdev_adfs_ch_cfg_cmd_fixed_param",
	TagVdevADFSOCACAbortCmd:                  "vdev_adfs_ocac_abort_cmd_fixed_param",
	TagDFSRadarDetectionEvent:                "dfs_radar_detection_event_fixed_param",
	TagVdevDFSCACCompleteEvent:               "vdev_dfs_cac_complete_event_fixed_param",
	TagVdevADFSOCACCompleteEvent:             "vdev_adfs_ocac_complete_event_fixed_param",
	TagDFSRadarFoundEvent:                    "dfs_radar_found_event_fixed_param",
	TagRoamScanModeCmd:                       "roam_scan_mode_cmd_fixed_param",
	TagRoamScanRSSIThresholdCmd:              "roam_scan_rssi_threshold_cmd_fixed_param",
	TagRoamScanPeriodCmd:                     "roam_scan_period_cmd_fixed_param",
	TagRoamScanRSSIChangeThresholdCmd:        "roam_scan_rssi_change_threshold_cmd_fixed_param",
	TagRoamAPProfileCmd:                      "roam_ap_profile_cmd_fixed_param",
	TagRoamChanListCmd:                       "roam_chan_list_cmd_fixed_param",
	TagRoamScanCmdCmd:                        "roam_scan_cmd_cmd_fixed_param",
	TagRoamSynchCompleteCmd:                  "roam_synch_complete_cmd_fixed_param",
	TagRoamSetRICRequestCmd:                  "roam_set_ric_request_cmd_fixed_param",
	TagRoamInvokeCmd:                         "roam_invoke_cmd_fixed_param",
	TagRoamFilterCmd:                         "roam_filter_cmd_fixed_param",
	TagRoamSubnetChangeConfigCmd:             "roam_subnet_change_config_cmd_fixed_param",
	TagRoamConfigureMAWCCmd:                  "roam_configure_mawc_cmd_fixed_param",
	TagRoamSetMBOParamCmd:                    "roam_set_mbo_param_cmd_fixed_param",
	TagRoamPERConfigCmd:                      "roam_per_config_cmd_fixed_param",
	TagRoamBSSLoadConfigCmd:                  "roam_bss_load_config_cmd_fixed_param",
	TagRoamDeauthConfigCmd:                   "roam_deauth_config_cmd_fixed_param",
	TagRoamIdleConfigCmd:                     "roam_idle_config_cmd_fixed_param",
	TagRoamPreauthStatusCmd:                  "roam_preauth_status_cmd_fixed_param",
	TagRoamEvent:                             "roam_event_fixed_param",
	TagRoamSynchEvent:                        "roam_synch_event_fixed_param",
	TagRoamScanStatsEvent:                    "roam_scan_stats_event_fixed_param",
	TagRoamPreauthStartEvent:                 "roam_preauth_start_event_fixed_param",
	TagRoamPmkidRequestEvent:                 "roam_pmkid_request_event_fixed_param",
	TagOCBSetConfigCmd:                       "ocb_set_config_cmd_fixed_param",
	TagOCBSetUtcTimeCmd:                      "ocb_set_utc_time_cmd_fixed_param",
	TagOCBStartTimingAdvertCmd:               "ocb_start_timing_advert_cmd_fixed_param",
	TagOCBStopTimingAdvertCmd:                "ocb_stop_timing_advert_cmd_fixed_param",
	TagOCBGetTSFTimerCmd:                     "ocb_get_tsf_timer_cmd_fixed_param",
	TagDCCGetStatsCmd:                        "dcc_get_stats_cmd_fixed_param",
	TagDCCClearStatsCmd:                      "dcc_clear_stats_cmd_fixed_param",
	TagDCCUpdateNDLCmd:                       "dcc_update_ndl_cmd_fixed_param",
	TagRSSIBreachMonitorConfigCmd:            "rssi_breach_monitor_config_cmd_fixed_param",
	TagLPIStartScanCmd:                       "lpi_start_scan_cmd_fixed_param",
	TagLPIStopScanCmd:                        "lpi_stop_scan_cmd_fixed_param",
	TagLPIMgmtSnoopingConfigCmd:              "lpi_mgmt_snooping_config_cmd_fixed_param",
	TagOCBSetConfigRespEvent:                 "ocb_set_config_resp_event_fixed_param",
	TagOCBGetTSFTimerRespEvent:               "ocb_get_tsf_timer_resp_event_fixed_param",
	TagDCCGetStatsRespEvent:                  "dcc_get_stats_resp_event_fixed_param",
	TagDCCUpdateNDLRespEvent:                 "dcc_update_ndl_resp_event_fixed_param",
	TagDCCStatsEvent:                         "dcc_stats_event_fixed_param",
	TagRSSIBreachEvent:                       "rssi_breach_event_fixed_param",
	TagLPIResultEvent:                        "lpi_result_event_fixed_param",
	TagLPIStatusEvent:                        "lpi_status_event_fixed_param",
	TagWoWAddWakePatternCmd:                  "wow_add_wake_pattern_cmd_fixed_param",
	TagWoWDelWakePatternCmd:                  "wow_del_wake_pattern_cmd_fixed_param",
	TagWoWEnableDisableWakeEventCmd:          "wow_enable_disable_wake_event_cmd_fixed_param",
	TagWoWEnableCmd:                          "wow_enable_cmd_fixed_param",
	TagWoWHostwakeupFromSleepCmd:             "wow_hostwakeup_from_sleep_cmd_fixed_param",
	TagWoWIOACAddKeepaliveCmd:                "wow_ioac_add_keepalive_cmd_fixed_param",
	TagWoWIOACDelKeepaliveCmd:                "wow_ioac_del_keepalive_cmd_fixed_param",
	TagWoWIOACAddWakePatternCmd:              "wow_ioac_add_wake_pattern_cmd_fixed_param",
	TagWoWIOACDelWakePatternCmd:              "wow_ioac_del_wake_pattern_cmd_fixed_param",
	TagD0WoWEnableDisableCmd:                 "d0_wow_enable_disable_cmd_fixed_param",
	TagExtWoWEnableCmd:                       "extwow_enable_cmd_fixed_param",
	TagExtWoWSetAppType1ParamsCmd:            "extwow_set_app_type1_params_cmd_fixed_param",
	TagExtWoWSetAppType2ParamsCmd:            "extwow_set_app_type2_params_cmd_fixed_param",
	TagWoWEnableICMPv6NaFltCmd:               "wow_enable_icmpv6_na_flt_cmd_fixed_param",
	TagWoWUDPSvcOfldCmd:                      "wow_udp_svc_ofld_cmd_fixed_param",
	TagWoWHostwakeupGPIOPinPatternConfigCmd:  "wow_hostwakeup_gpio_pin_pattern_config_cmd_fixed_param",
	TagWoWSetActionWakeUpCmd:                 "wow_set_action_wake_up_cmd_fixed_param",
	TagWoWWakeupHostEvent:                    "wow_wakeup_host_event_fixed_param",
	TagWoWInitialWakeupEvent:                 "wow_initial_wakeup_event_fixed_param",
	TagRTTMeasreqCmd:                         "rtt_measreq_cmd_fixed_param",
	TagRTTTSFCmd:                             "rtt_tsf_cmd_fixed_param",
	TagOEMReqCmd:                             "oem_req_cmd_fixed_param",
	TagRTTMeasurementReportEvent:             "rtt_measurement_report_event_fixed_param",
	TagRTTErrorReportEvent:                   "rtt_error_report_event_fixed_param",
	TagOEMCapabilityEvent:                    "oem_capability_event_fixed_param",
	TagOEMMeasurementReportEvent:             "oem_measurement_report_event_fixed_param",
	TagOEMErrorReportEvent:                   "oem_error_report_event_fixed_param",
	TagOEMResponseEvent:                      "oem_response_event_fixed_param",
	TagSpectralScanConfCmd:                   "spectral_scan_conf_cmd_fixed_param",
	TagSpectralScanEnableCmd:                 "spectral_scan_enable_cmd_fixed_param",
	TagSpectralScanReportEvent:               "spectral_scan_report_event_fixed_param",
	TagRequestStatsCmd:                       "request_stats_cmd_fixed_param",
	TagMCCSchedTrafficStatsCmd:               "mcc_sched_traffic_stats_cmd_fixed_param",
	TagRequestLinkStatsCmd:                   "request_link_stats_cmd_fixed_param",
	TagClearLinkStatsCmd:                     "clear_link_stats_cmd_fixed_param",
	TagStartLinkStatsCmd:                     "start_link_stats_cmd_fixed_param",
	TagRequestStatsExtCmd:                    "request_stats_ext_cmd_fixed_param",
	TagRequestPeerStatsInfoCmd:               "request_peer_stats_info_cmd_fixed_param",
	TagRequestRadioChanStatsCmd:              "request_radio_chan_stats_cmd_fixed_param",
	TagRequestWLMStatsCmd:                    "request_wlm_stats_cmd_fixed_param",
	TagRequestRCPICmd:                        "request_rcpi_cmd_fixed_param",
	TagRequestBcnStatsCmd:                    "request_bcn_stats_cmd_fixed_param",
	TagRequestPeerStatsInfoExtCmd:            "request_peer_stats_info_ext_cmd_fixed_param",
	TagUpdateStatsEvent:                      "update_stats_event_fixed_param",
	TagIfaceLinkStatsEvent:                   "iface_link_stats_event_fixed_param",
	TagPeerLinkStatsEvent:                    "peer_link_stats_event_fixed_param",
	TagRadioLinkStatsEvent:                   "radio_link_stats_event_fixed_param",
	TagUpdateFWMemDumpEvent:                  "update_fw_mem_dump_event_fixed_param",
	TagStatsExtEvent:                         "stats_ext_event_fixed_param",
	TagPeerStatsInfoEvent:                    "peer_stats_info_event_fixed_param",
	TagRadioChanStatsEvent:                   "radio_chan_stats_event_fixed_param",
	TagRCPIInfoEvent:                         "rcpi_info_event_fixed_param",
	TagWLMStatsEvent:                         "wlm_stats_event_fixed_param",
	TagUpdateRSSIInfoEvent:                   "update_rssi_info_event_fixed_param",
	TagReportStatsEvent:                      "report_stats_event_fixed_param",
	TagSetARPNSOffloadCmd:                    "set_arp_ns_offload_cmd_fixed_param",
	TagAddProactiveARPRspPatternCmd:          "add_proactive_arp_rsp_pattern_cmd_fixed_param",
	TagDelProactiveARPRspPatternCmd:          "del_proactive_arp_rsp_pattern_cmd_fixed_param",
	TagNetworkListOffloadConfigCmd:           "network_list_offload_config_cmd_fixed_param",
	TagApfindCmd:                             "apfind_cmd_fixed_param",
	TagPasspointListConfigCmd:                "passpoint_list_config_cmd_fixed_param",
	TagNLOConfigRSSIParamsCmd:                "nlo_config_rssi_params_cmd_fixed_param",
	TagNLOMatchEvent:                         "nlo_match_event_fixed_param",
	TagNLOScanCompleteEvent:                  "nlo_scan_complete_event_fixed_param",
	TagApfindEvent:                           "apfind_event_fixed_param",
	TagPasspointMatchEvent:                   "passpoint_match_event_fixed_param",
	TagGTKOffloadCmd:                         "gtk_offload_cmd_fixed_param",
	TagGTKOffloadGetInfoCmd:                  "gtk_offload_get_info_cmd_fixed_param",
	TagGTKOffloadStatusEvent:                 "gtk_offload_status_event_fixed_param",
	TagGTKRekeyFailEvent:                     "gtk_rekey_fail_event_fixed_param",
	TagVdevSetCsumOffloadCmd:                 "vdev_set_csum_offload_cmd_fixed_param",
	TagChatterSetModeCmd:                     "chatter_set_mode_cmd_fixed_param",
	TagChatterAddCoalescingFilterCmd:         "chatter_add_coalescing_filter_cmd_fixed_param",
	TagChatterDeleteCoalescingFilterCmd:      "chatter_delete_coalescing_filter_cmd_fixed_param",
	TagChatterCoalescingQueryCmd:             "chatter_coalescing_query_cmd_fixed_param",
	TagChatterPCQueryEvent:                   "chatter_pc_query_event_fixed_param",
	TagPeerTIDAddBACmd:                       "peer_tid_addba_cmd_fixed_param",
	TagPeerTIDDelBACmd:                       "peer_tid_delba_cmd_fixed_param",
	TagStaDTIMPsMethodCmd:                    "sta_dtim_ps_method_cmd_fixed_param",
	TagStaUAPSDAutoTrigCmd:                   "sta_uapsd_auto_trig_cmd_fixed_param",
	TagStaKeepaliveCmd:                       "sta_keepalive_cmd_fixed_param",
	TagVdevStaBATimeoutCmd:                   "vdev_sta_ba_timeout_cmd_fixed_param",
	TagVdevStaSMPSForceModeCmd:               "vdev_sta_smps_force_mode_cmd_fixed_param",
	TagVdevStaSMPSParamCmd:                   "vdev_sta_smps_param_cmd_fixed_param",
	TagStaSMPSForceModeCompleteEvent:         "sta_smps_force_mode_complete_event_fixed_param",
	TagEchoCmd:                               "echo_cmd_fixed_param",
	TagPdevUTFCmd:                            "pdev_utf_cmd_fixed_param",
	TagDbgLogCfgCmd:                          "dbglog_cfg_cmd_fixed_param",
	TagPdevQVITCmd:                           "pdev_qvit_cmd_fixed_param",
	TagFwtestVdevMCCSetTBTTModeCmd:           "fwtest_vdev_mcc_set_tbtt_mode_cmd_fixed_param",
	TagVdevSetKeepaliveV2Cmd:                 "vdev_set_keepalive_v2_cmd_fixed_param",
	TagForceFWHangCmd:                        "force_fw_hang_cmd_fixed_param",
	TagSetMcastBcastFilterCmd:                "set_mcastbcast_filter_cmd_fixed_param",
	TagDbgLogTimeStampSyncCmd:                "dbglog_time_stamp_sync_cmd_fixed_param",
	TagSetMultipleMcastFilterCmd:             "set_multiple_mcast_filter_cmd_fixed_param",
	TagGetFWMemDumpCmd:                       "get_fw_mem_dump_cmd_fixed_param",
	TagDebugMesgFlushCmd:                     "debug_mesg_flush_cmd_fixed_param",
	TagDiagEventLogConfigCmd:                 "diag_event_log_config_cmd_fixed_param",
	TagSetCurrentCountryCmd:                  "set_current_country_cmd_fixed_param",
	TagSetInitCountryCmd:                     "set_init_country_cmd_fixed_param",
	TagSet11dCountryCmd:                      "set_11d_country_cmd_fixed_param",
	TagRequestWlanStatsCmd:                   "request_wlan_stats_cmd_fixed_param",
	TagRequestRSSICmd:                        "request_rssi_cmd_fixed_param",
	TagPdevGetNFCalPowerExtCmd:               "pdev_get_nfcal_power_ext_cmd_fixed_param",
	TagSetFWDebugTSFCmd:                      "set_fw_debug_tsf_cmd_fixed_param",
	TagUnitTestCmd:                           "unit_test_cmd_fixed_param",
	TagEchoEvent:                             "echo_event_fixed_param",
	TagPdevUTFEvent:                          "pdev_utf_event_fixed_param",
	TagDebugMessageEvent:                     "debug_message_event_fixed_param",
	TagDebugPrintEvent:                       "debug_print_event_fixed_param",
	TagDCSInterferenceEvent:                  "dcs_interference_event_fixed_param",
	TagPdevQVITEvent:                         "pdev_qvit_event_fixed_param",
	TagWlanProfileDataEvent:                  "wlan_profile_data_event_fixed_param",
	TagDebugMesgFlushCompleteEvent:           "debug_mesg_flush_complete_event_fixed_param",
	TagDiagEventLogSupportedEvent:            "diag_event_log_supported_event_fixed_param",
	TagRegChanListCcEvent:                    "reg_chan_list_cc_event_fixed_param",
	TagNewCountry11dEvent:                    "new_country_11d_event_fixed_param",
	TagUpdateWHALMIBStatsEvent:               "update_whal_mib_stats_event_fixed_param",
	TagGPIOConfigCmd:                         "gpio_config_cmd_fixed_param",
	TagGPIOOutputCmd:                         "gpio_output_cmd_fixed_param",
	TagGPIOInputEvent:                        "gpio_input_event_fixed_param",
	TagFwtestP2PSetOppPSParamCmd:             "fwtest_p2p_set_oppps_param_cmd_fixed_param",
	TagFwtestUnitTestCmd:                     "fwtest_unit_test_cmd_fixed_param",
	TagFwtestNANTestCmd:                      "fwtest_nan_test_cmd_fixed_param",
	TagFwtestUnitTestEvent:                   "fwtest_unit_test_event_fixed_param",
	TagTDLSSetStateCmd:                       "tdls_set_state_cmd_fixed_param",
	TagTDLSPeerUpdateCmd:                     "tdls_peer_update_cmd_fixed_param",
	TagTDLSSetOffchanModeCmd:                 "tdls_set_offchan_mode_cmd_fixed_param",
	TagTDLSPeerEvent:                         "tdls_peer_event_fixed_param",
	TagResmgrAdaptiveOcsEnDisCmd:             "resmgr_adaptive_ocs_en_dis_cmd_fixed_param",
	TagResmgrSetChanTimeQuotaCmd:             "resmgr_set_chan_time_quota_cmd_fixed_param",
	TagResmgrSetChanLatencyCmd:               "resmgr_set_chan_latency_cmd_fixed_param",
	TagResmgrChanTimeQuotaEvent:              "resmgr_chan_time_quota_event_fixed_param",
	TagP2PDevSetDeviceInfoCmd:                "p2p_dev_set_device_info_cmd_fixed_param",
	TagP2PDevSetDiscoverabilityCmd:           "p2p_dev_set_discoverability_cmd_fixed_param",
	TagP2PGoSetBeaconIECmd:                   "p2p_go_set_beacon_ie_cmd_fixed_param",
	TagP2PGoSetProbeRespIECmd:                "p2p_go_set_probe_resp_ie_cmd_fixed_param",
	TagP2PSetVendorIEDataCmd:                 "p2p_set_vendor_ie_data_cmd_fixed_param",
	TagP2PDiscOffloadConfigCmd:               "p2p_disc_offload_config_cmd_fixed_param",
	TagP2PDiscOffloadAppIECmd:                "p2p_disc_offload_appie_cmd_fixed_param",
	TagP2PDiscOffloadPatternCmd:              "p2p_disc_offload_pattern_cmd_fixed_param",
	TagP2PSetNoACmd:                          "p2p_set_noa_cmd_fixed_param",
	TagP2PSetOppPSCmd:                        "p2p_set_oppps_cmd_fixed_param",
	TagP2PListenOffloadStartCmd:              "p2p_listen_offload_start_cmd_fixed_param",
	TagP2PListenOffloadStopCmd:               "p2p_listen_offload_stop_cmd_fixed_param",
	TagP2PNoAEvent:                           "p2p_noa_event_fixed_param",
	TagP2PDiscReportEvent:                    "p2p_disc_report_event_fixed_param",
	TagP2PListenOffloadStoppedEvent:          "p2p_listen_offload_stopped_event_fixed_param",
	TagP2PLOStopEvent:                        "p2p_lo_stop_event_fixed_param",
	TagAddBcnFilterCmd:                       "add_bcn_filter_cmd_fixed_param",
	TagRmvBcnFilterCmd:                       "rmv_bcn_filter_cmd_fixed_param",
	TagBcnFilterRxCmd:                        "bcn_filter_rx_cmd_fixed_param",
	TagExtscanStartCmd:                       "extscan_start_cmd_fixed_param",
	TagExtscanStopCmd:                        "extscan_stop_cmd_fixed_param",
	TagExtscanConfigureWlanChangeMonitorCmd:  "extscan_configure_wlan_change_monitor_cmd_fixed_param",
	TagExtscanConfigureHotlistMonitorCmd:     "extscan_configure_hotlist_monitor_cmd_fixed_param",
	TagExtscanGetCachedResultsCmd:            "extscan_get_cached_results_cmd_fixed_param",
	TagExtscanGetWlanChangeResultsCmd:        "extscan_get_wlan_change_results_cmd_fixed_param",
	TagExtscanSetCapabilitiesCmd:             "extscan_set_capabilities_cmd_fixed_param",
	TagExtscanGetCapabilitiesCmd:             "extscan_get_capabilities_cmd_fixed_param",
	TagExtscanConfigureHotlistSSIDMonitorCmd: "extscan_configure_hotlist_ssid_monitor_cmd_fixed_param",
	TagExtscanStartStopEvent:                 "extscan_start_stop_event_fixed_param",
	TagExtscanOperationEvent:                 "extscan_operation_event_fixed_param",
	TagExtscanTableUsageEvent:                "extscan_table_usage_event_fixed_param",
	TagExtscanCachedResultsEvent:             "extscan_cached_results_event_fixed_param",
	TagExtscanWlanChangeResultsEvent:         "extscan_wlan_change_results_event_fixed_param",
	TagExtscanHotlistMatchEvent:              "extscan_hotlist_match_event_fixed_param",
	TagExtscanCapabilitiesEvent:              "extscan_capabilities_event_fixed_param",
	TagExtscanHotlistSSIDMatchEvent:          "extscan_hotlist_ssid_match_event_fixed_param",
	TagCoexConfigCmd:                         "coex_config_cmd_fixed_param",
	TagCoexGetAntennaIsolationCmd:            "coex_get_antenna_isolation_cmd_fixed_param",
	TagChanAvoidUpdateCmd:                    "chan_avoid_update_cmd_fixed_param",
	TagCoexAntennaIsolationEvent:             "coex_antenna_isolation_event_fixed_param",
	TagChanAvoidEvent:                        "chan_avoid_event_fixed_param",
	TagBPFGetCapabilityCmd:                   "bpf_get_capability_cmd_fixed_param",
	TagBPFGetVdevStatsCmd:                    "bpf_get_vdev_stats_cmd_fixed_param",
	TagBPFSetVdevInstructionsCmd:             "bpf_set_vdev_instructions_cmd_fixed_param",
	TagBPFDelVdevInstructionsCmd:             "bpf_del_vdev_instructions_cmd_fixed_param",
	TagBPFSetVdevActiveModeCmd:               "bpf_set_vdev_active_mode_cmd_fixed_param",
	TagBPFSetVdevEnableCmd:                   "bpf_set_vdev_enable_cmd_fixed_param",
	TagBPFSetVdevWorkMemoryCmd:               "bpf_set_vdev_work_memory_cmd_fixed_param",
	TagBPFGetVdevWorkMemoryCmd:               "bpf_get_vdev_work_memory_cmd_fixed_param",
	TagBPFCapabilityInfoEvent:                "bpf_capability_info_event_fixed_param",
	TagBPFVdevStatsEvent:                     "bpf_vdev_stats_event_fixed_param",
	TagBPFGetVdevWorkMemoryRespEvent:         "bpf_get_vdev_work_memory_resp_event_fixed_param",
	TagTWTEnableCmd:                          "twt_enable_cmd_fixed_param",
	TagTWTDisableCmd:                         "twt_disable_cmd_fixed_param",
	TagTWTAddDialogCmd:                       "twt_add_dialog_cmd_fixed_param",
	TagTWTDelDialogCmd:                       "twt_del_dialog_cmd_fixed_param",
	TagTWTPauseDialogCmd:                     "twt_pause_dialog_cmd_fixed_param",
	TagTWTResumeDialogCmd:                    "twt_resume_dialog_cmd_fixed_param",
	TagTWTEnableCompleteEvent:                "twt_enable_complete_event_fixed_param",
	TagTWTDisableCompleteEvent:               "twt_disable_complete_event_fixed_param",
	TagTWTAddDialogCompleteEvent:             "twt_add_dialog_complete_event_fixed_param",
	TagTWTDelDialogCompleteEvent:             "twt_del_dialog_complete_event_fixed_param",
	TagTWTPauseDialogCompleteEvent:           "twt_pause_dialog_complete_event_fixed_param",
	TagTWTResumeDialogCompleteEvent:          "twt_resume_dialog_complete_event_fixed_param",
	TagMotionDetConfigParamCmd:               "motion_det_config_param_cmd_fixed_param",
	TagMotionDetBaseLineConfigParamCmd:       "motion_det_base_line_config_param_cmd_fixed_param",
	TagMotionDetStartStopCmd:                 "motion_det_start_stop_cmd_fixed_param",
	TagMotionDetBaseLineStartStopCmd:         "motion_det_base_line_start_stop_cmd_fixed_param",
	TagMotionDetHostEvent:                    "motion_det_host_event_fixed_param",
	TagMotionDetBaseLineHostEvent:            "motion_det_base_line_host_event_fixed_param",
}

//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

// eventSchemas returns the schema of every builtin event.
func eventSchemas() []*MessageSchema {
	return []*MessageSchema{
		// Start up
		NewSchema(EvtServiceReady, "service_ready_event").
			Fixed(TagServiceReadyEvent, "fixed_param", 108).
			Structs(TagHalRegCaps, "hal_reg_caps", 36).
			Structs(TagMemReqs, "mem_reqs", 16).
			FixedArray(TagServiceBitmap, "service_bitmap", 4, 4).
			Words(TagExtServiceBitmap, "ext_service_bitmap").
			MustBuild(),
		NewSchema(EvtReady, "ready_event").
			Fixed(TagReadyEvent, "fixed_param", 36).
			Structs(TagMACList, "extra_mac_addrs", 8).
			Fixed(TagABIVersion, "abi_version", 24).
			MustBuild(),
		NewSchema(EvtServiceAvailable, "service_available_event").
			Fixed(TagServiceAvailableEvent, "fixed_param", 8).
			Words(TagExtServiceBitmap, "ext_service_bitmap").
			MustBuild(),
		NewSchema(EvtServiceReadyExt, "service_ready_ext_event").
			Fixed(TagServiceReadyExtEvent, "fixed_param", 36).
			Structs(TagHWModeCaps, "hw_mode_caps", 12).
			Structs(TagMACPhyCaps, "mac_phy_caps", 64).
			Structs(TagHalRegCaps, "hal_reg_caps_ext", 36).
			MustBuild(),
		NewSchema(EvtServiceReadyExt2, "service_ready_ext2_event").
			Fixed(TagServiceReadyExt2Event, "fixed_param", 28).
			Bytes(TagData, "dma_ring_caps").
			MustBuild(),

		// Scan
		NewSchema(EvtScan, "scan_event").
			Fixed(TagScanEvent, "fixed_param", 32).
			MustBuild(),
		NewSchema(EvtScanChanInfo, "scan_chan_info_event").
			Fixed(TagScanChanInfoEvent, "fixed_param", 24).
			Structs(TagChanStats, "chan_stats", 32).
			MustBuild(),
		NewSchema(EvtScanRSSILookup, "scan_rssi_lookup_event").
			Fixed(TagScanRSSILookupEvent, "fixed_param", 12).
			Words(TagRSSIList, "rssi_list").
			MustBuild(),

		// Physical device
		NewSchema(EvtPdevTPCConfig, "pdev_tpc_config_event").
			Fixed(TagPdevTPCConfigEvent, "fixed_param", 40).
			Words(TagTPCRates, "tpc_rates").
			MustBuild(),
		NewSchema(EvtChanInfo, "chan_info_event").
			Fixed(TagChanInfoEvent, "fixed_param", 40).
			MustBuild(),
		NewSchema(EvtPhyErr, "phyerr_event").
			Fixed(TagPhyErrEvent, "fixed_param", 24).
			Bytes(TagPhyErrData, "phyerr_data").
			MustBuild(),
		NewSchema(EvtPdevFTMIntg, "pdev_ftm_intg_event").
			Fixed(TagPdevFTMIntgEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtPdevTemperature, "pdev_temperature_event").
			Fixed(TagPdevTemperatureEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtPdevANICckLevel, "pdev_ani_cck_level_event").
			Fixed(TagPdevANICckLevelEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtPdevANIOfdmLevel, "pdev_ani_ofdm_level_event").
			Fixed(TagPdevANIOfdmLevelEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtPdevNFCalPowerAllChannels, "pdev_nfcal_power_all_channels_event").
			Fixed(TagPdevNFCalPowerAllChannelsEvent, "fixed_param", 8).
			Words(TagNFValues, "nf_values").
			Words(TagTemperatures, "nf_freqs").
			MustBuild(),
		NewSchema(EvtPdevTPC, "pdev_tpc_event").
			Fixed(TagPdevTPCEvent, "fixed_param", 12).
			Words(TagTPCRates, "tpc_rates").
			MustBuild(),
		NewSchema(EvtPdevSetHWModeResp, "pdev_set_hw_mode_resp_event").
			Fixed(TagPdevSetHWModeRespEvent, "fixed_param", 16).
			Words(TagVdevIDs, "vdev_mac_map").
			MustBuild(),
		NewSchema(EvtPdevHWModeTransition, "pdev_hw_mode_transition_event").
			Fixed(TagPdevHWModeTransitionEvent, "fixed_param", 16).
			Words(TagVdevIDs, "vdev_mac_map").
			MustBuild(),
		NewSchema(EvtPdevSetMACConfigResp, "pdev_set_mac_config_resp_event").
			Fixed(TagPdevSetMACConfigRespEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtPdevCSASwitchCountStatus, "pdev_csa_switch_count_status_event").
			Fixed(TagPdevCSASwitchCountStatusEvent, "fixed_param", 16).
			Words(TagVdevIDs, "vdev_ids").
			MustBuild(),
		NewSchema(EvtPdevCheckCalVersion, "pdev_check_cal_version_event").
			Fixed(TagPdevCheckCalVersionEvent, "fixed_param", 24).
			Bytes(TagData, "board_mcn").
			MustBuild(),
		NewSchema(EvtPdevChipPowerStats, "pdev_chip_power_stats_event").
			Fixed(TagPdevChipPowerStatsEvent, "fixed_param", 40).
			Bytes(TagDebugPayload, "debug_payload").
			MustBuild(),
		NewSchema(EvtPdevBSSChanInfo, "pdev_bss_chan_info_event").
			Fixed(TagPdevBSSChanInfoEvent, "fixed_param", 44).
			MustBuild(),
		NewSchema(EvtPdevAntdivStatus, "pdev_antdiv_status_event").
			Fixed(TagPdevAntdivStatusEvent, "fixed_param", 12).
			Words(TagArgs, "chain_rssi").
			MustBuild(),
		NewSchema(EvtPdevDivRSSIAntid, "pdev_div_rssi_antid_event").
			Fixed(TagPdevDivRSSIAntidEvent, "fixed_param", 20).
			Words(TagRSSIList, "rssi_list").
			MustBuild(),
		NewSchema(EvtPdevDMARingBufRelease, "pdev_dma_ring_buf_release_event").
			Fixed(TagPdevDMARingBufReleaseEvent, "fixed_param", 28).
			Bytes(TagData, "buf_entries").
			MustBuild(),
		NewSchema(EvtPdevResume, "pdev_resume_event").
			Fixed(TagPdevResumeEvent, "fixed_param", 4).
			MustBuild(),

		// Virtual device
		NewSchema(EvtVdevStartResp, "vdev_start_resp_event").
			Fixed(TagVdevStartRespEvent, "fixed_param", 36).
			MustBuild(),
		NewSchema(EvtVdevStopped, "vdev_stopped_event").
			Fixed(TagVdevStoppedEvent, "fixed_param", 4).
			MustBuild(),
		NewSchema(EvtVdevInstallKeyComplete, "vdev_install_key_complete_event").
			Fixed(TagVdevInstallKeyCompleteEvent, "fixed_param", 20).
			MustBuild(),
		NewSchema(EvtVdevMCCBcnIntervalChangeReq, "vdev_mcc_bcn_interval_change_req_event").
			Fixed(TagVdevMCCBcnIntervalChangeReqEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtVdevTSFReport, "vdev_tsf_report_event").
			Fixed(TagVdevTSFReportEvent, "fixed_param", 24).
			Structs(TagTSFReports, "remote_tsfs", 20).
			MustBuild(),
		NewSchema(EvtVdevDeleteResp, "vdev_delete_resp_event").
			Fixed(TagVdevDeleteRespEvent, "fixed_param", 4).
			MustBuild(),
		NewSchema(EvtVdevEncryptDecryptDataResp, "vdev_encrypt_decrypt_data_resp_event").
			Fixed(TagVdevEncryptDecryptDataRespEvent, "fixed_param", 12).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtVdevGetARPStatResp, "vdev_get_arp_stat_resp_event").
			Fixed(TagVdevGetARPStatRespEvent, "fixed_param", 28).
			Structs(TagARPCounters, "arp_counters", 16).
			MustBuild(),
		NewSchema(EvtVdevGetTxPowerResp, "vdev_get_tx_power_resp_event").
			Fixed(TagVdevGetTxPowerRespEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtVdevGetKeepaliveResp, "vdev_get_keepalive_resp_event").
			Fixed(TagVdevGetKeepaliveRespEvent, "fixed_param", 32).
			MustBuild(),
		NewSchema(EvtVdevBcnReceptionStats, "vdev_bcn_reception_stats_event").
			Fixed(TagVdevBcnReceptionStatsEvent, "fixed_param", 48).
			Words(TagArgs, "bcn_bitmap").
			MustBuild(),
		NewSchema(EvtVdevMgmtOffload, "vdev_mgmt_offload_event").
			Fixed(TagVdevMgmtOffloadEvent, "fixed_param", 28).
			Bytes(TagBufp, "bufp").
			MustBuild(),
		NewSchema(EvtVdevDisconnect, "vdev_disconnect_event").
			Fixed(TagVdevDisconnectEvent, "fixed_param", 16).
			Bytes(TagData, "disconnect_ie").
			MustBuild(),

		// Peer
		NewSchema(EvtPeerStaKickout, "peer_sta_kickout_event").
			Fixed(TagPeerStaKickoutEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtPeerInfo, "peer_info_event").
			Fixed(TagPeerInfoEvent, "fixed_param", 8).
			Structs(TagPeerStats, "peer_stats", 48).
			MustBuild(),
		NewSchema(EvtPeerEstimatedLinkspeed, "peer_estimated_linkspeed_event").
			Fixed(TagPeerEstimatedLinkspeedEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtPeerState, "peer_state_event").
			Fixed(TagPeerStateEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtPeerAssocConf, "peer_assoc_conf_event").
			Fixed(TagPeerAssocConfEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtPeerDeleteResp, "peer_delete_resp_event").
			Fixed(TagPeerDeleteRespEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtPeerAntdivInfo, "peer_antdiv_info_event").
			Fixed(TagPeerAntdivInfoEvent, "fixed_param", 8).
			Words(TagArgs, "chain_rssi").
			MustBuild(),
		NewSchema(EvtPeerCreateConf, "peer_create_conf_event").
			Fixed(TagPeerCreateConfEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtPeerTxFailCntThr, "peer_tx_fail_cnt_thr_event").
			Fixed(TagPeerTxFailCntThrEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtPeerOperModeChange, "peer_oper_mode_change_event").
			Fixed(TagPeerOperModeChangeEvent, "fixed_param", 20).
			MustBuild(),

		// Management frames
		NewSchema(EvtMgmtRx, "mgmt_rx_event").
			Fixed(TagMgmtRxEvent, "fixed_param", 40).
			Bytes(TagBufp, "bufp").
			Mandatory().
			MustBuild(),
		NewSchema(EvtHostSWBA, "host_swba_event").
			Fixed(TagHostSWBAEvent, "fixed_param", 12).
			Structs(TagTIMInfo, "tim_info", 32).
			Structs(TagNoAInfo, "noa_info", 24).
			MustBuild(),
		NewSchema(EvtTBTTOffsetUpdate, "tbttoffset_update_event").
			Fixed(TagTBTTOffsetUpdateEvent, "fixed_param", 8).
			Words(TagArgs, "tbtt_offsets").
			MustBuild(),
		NewSchema(EvtOffloadBcnTxStatus, "offload_bcn_tx_status_event").
			Fixed(TagOffloadBcnTxStatusEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtOffloadProbRespTxStatus, "offload_prob_resp_tx_status_event").
			Fixed(TagOffloadProbRespTxStatusEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtMgmtTxCompletion, "mgmt_tx_completion_event").
			Fixed(TagMgmtTxCompletionEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtTBTTOffsetExtUpdate, "tbttoffset_ext_update_event").
			Fixed(TagTBTTOffsetExtUpdateEvent, "fixed_param", 8).
			Words(TagArgs, "tbtt_offsets").
			MustBuild(),
		NewSchema(EvtOffchanDataTxCompletion, "offchan_data_tx_completion_event").
			Fixed(TagOffchanDataTxCompletionEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtMgmtTxBundleCompletion, "mgmt_tx_bundle_completion_event").
			Fixed(TagMgmtTxBundleCompletionEvent, "fixed_param", 8).
			Words(TagArgs, "desc_ids").
			Words(TagWakeReasons, "statuses").
			MustBuild(),

		// Block ack negotiation
		NewSchema(EvtTxDelBAComplete, "tx_delba_complete_event").
			Fixed(TagTxDelBACompleteEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtTxAddBAComplete, "tx_addba_complete_event").
			Fixed(TagTxAddBACompleteEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtBARspSSN, "ba_rsp_ssn_event").
			Fixed(TagBARspSSNEvent, "fixed_param", 12).
			Words(TagArgs, "ssn_entries").
			MustBuild(),
		NewSchema(EvtAggrStateTrig, "aggr_state_trig_event").
			Fixed(TagAggrStateTrigEvent, "fixed_param", 8).
			MustBuild(),

		// Station power save
		NewSchema(EvtAPPsEGAPInfo, "ap_ps_egap_info_event").
			Fixed(TagAPPsEGAPInfoEvent, "fixed_param", 8).
			Words(TagArgs, "chain_rssi").
			MustBuild(),
		NewSchema(EvtStaPsWakeReason, "sta_ps_wake_reason_event").
			Fixed(TagStaPsWakeReasonEvent, "fixed_param", 8).
			MustBuild(),

		// DFS
		NewSchema(EvtDFSRadarDetection, "dfs_radar_detection_event").
			Fixed(TagDFSRadarDetectionEvent, "fixed_param", 28).
			MustBuild(),
		NewSchema(EvtVdevDFSCACComplete, "vdev_dfs_cac_complete_event").
			Fixed(TagVdevDFSCACCompleteEvent, "fixed_param", 24).
			MustBuild(),
		NewSchema(EvtVdevADFSOCACComplete, "vdev_adfs_ocac_complete_event").
			Fixed(TagVdevADFSOCACCompleteEvent, "fixed_param", 20).
			MustBuild(),
		NewSchema(EvtDFSRadarFound, "dfs_radar_found_event").
			Fixed(TagDFSRadarFoundEvent, "fixed_param", 40).
			MustBuild(),

		// Roaming
		NewSchema(EvtRoam, "roam_event").
			Fixed(TagRoamEvent, "fixed_param", 16).
			Bytes(TagBufp, "frame").
			MustBuild(),
		NewSchema(EvtRoamSynch, "roam_synch_event").
			Fixed(TagRoamSynchEvent, "fixed_param", 72).
			Bytes(TagBeaconIE, "beacon_probe_rsp").
			Bytes(TagAssocIE, "reassoc_rsp").
			Fixed(TagChannel, "channel", 24).
			Bytes(TagKeyData, "keys").
			MustBuild(),
		NewSchema(EvtRoamScanStats, "roam_scan_stats_event").
			Fixed(TagRoamScanStatsEvent, "fixed_param", 24).
			Words(TagChanList, "chan_list").
			Structs(TagBSSIDList, "bssid_list", 8).
			MustBuild(),
		NewSchema(EvtRoamPreauthStart, "roam_preauth_start_event").
			Fixed(TagRoamPreauthStartEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtRoamPmkidRequest, "roam_pmkid_request_event").
			Fixed(TagRoamPmkidRequestEvent, "fixed_param", 8).
			Structs(TagPMKIDs, "pmk_ids", 16).
			MustBuild(),

		// OCB and other offloads
		NewSchema(EvtOCBSetConfigResp, "ocb_set_config_resp_event").
			Fixed(TagOCBSetConfigRespEvent, "fixed_param", 4).
			MustBuild(),
		NewSchema(EvtOCBGetTSFTimerResp, "ocb_get_tsf_timer_resp_event").
			Fixed(TagOCBGetTSFTimerRespEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtDCCGetStatsResp, "dcc_get_stats_resp_event").
			Fixed(TagDCCGetStatsRespEvent, "fixed_param", 8).
			Structs(TagDCSStats, "dcs_stats", 40).
			MustBuild(),
		NewSchema(EvtDCCUpdateNDLResp, "dcc_update_ndl_resp_event").
			Fixed(TagDCCUpdateNDLRespEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtDCCStats, "dcc_stats_event").
			Fixed(TagDCCStatsEvent, "fixed_param", 8).
			Structs(TagDCSStats, "dcs_stats", 40).
			MustBuild(),
		NewSchema(EvtRSSIBreach, "rssi_breach_event").
			Fixed(TagRSSIBreachEvent, "fixed_param", 40).
			MustBuild(),
		NewSchema(EvtLPIResult, "lpi_result_event").
			Fixed(TagLPIResultEvent, "fixed_param", 20).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtLPIStatus, "lpi_status_event").
			Fixed(TagLPIStatusEvent, "fixed_param", 12).
			MustBuild(),

		// Wake on wireless
		NewSchema(EvtWoWWakeupHost, "wow_wakeup_host_event").
			Fixed(TagWoWWakeupHostEvent, "fixed_param", 16).
			Bytes(TagWakePacket, "wake_packet").
			MustBuild(),
		NewSchema(EvtWoWInitialWakeup, "wow_initial_wakeup_event").
			Fixed(TagWoWInitialWakeupEvent, "fixed_param", 4).
			MustBuild(),

		// RTT and OEM
		NewSchema(EvtRTTMeasurementReport, "rtt_measurement_report_event").
			Fixed(TagRTTMeasurementReportEvent, "fixed_param", 16).
			Bytes(TagRTTReports, "rtt_reports").
			MustBuild(),
		NewSchema(EvtRTTErrorReport, "rtt_error_report_event").
			Fixed(TagRTTErrorReportEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtOEMCapability, "oem_capability_event").
			Fixed(TagOEMCapabilityEvent, "fixed_param", 12).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtOEMMeasurementReport, "oem_measurement_report_event").
			Fixed(TagOEMMeasurementReportEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtOEMErrorReport, "oem_error_report_event").
			Fixed(TagOEMErrorReportEvent, "fixed_param", 12).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtOEMResponse, "oem_response_event").
			Fixed(TagOEMResponseEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),

		// Spectral scan
		NewSchema(EvtSpectralScanReport, "spectral_scan_report_event").
			Fixed(TagSpectralScanReportEvent, "fixed_param", 36).
			Bytes(TagSpectralBins, "spectral_bins").
			MustBuild(),

		// Statistics
		NewSchema(EvtUpdateStats, "update_stats_event").
			Fixed(TagUpdateStatsEvent, "fixed_param", 36).
			Structs(TagPdevStats, "pdev_stats", 96).
			Structs(TagVdevStats, "vdev_stats", 80).
			Structs(TagPeerStats, "peer_stats", 48).
			Structs(TagBcnStats, "bcn_stats", 12).
			Structs(TagRSSIStats, "rssi_stats", 44).
			Structs(TagChanStats, "chan_stats", 32).
			Structs(TagMIBStats, "mib_stats", 32).
			Structs(TagPeerExtdStats, "peer_extd_stats", 40).
			MustBuild(),
		NewSchema(EvtIfaceLinkStats, "iface_link_stats_event").
			Fixed(TagIfaceLinkStatsEvent, "fixed_param", 24).
			Structs(TagIfaceStats, "iface_stats", 36).
			Structs(TagACStats, "ac_stats", 56).
			MustBuild(),
		NewSchema(EvtPeerLinkStats, "peer_link_stats_event").
			Fixed(TagPeerLinkStatsEvent, "fixed_param", 16).
			Structs(TagPeerLinkStats, "peer_link_stats", 24).
			Structs(TagRateStats, "rate_stats", 28).
			MustBuild(),
		NewSchema(EvtRadioLinkStats, "radio_link_stats_event").
			Fixed(TagRadioLinkStatsEvent, "fixed_param", 20).
			Structs(TagRadioStats, "radio_stats", 40).
			Structs(TagChanStats, "chan_stats", 32).
			MustBuild(),
		NewSchema(EvtUpdateFWMemDump, "update_fw_mem_dump_event").
			Fixed(TagUpdateFWMemDumpEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtStatsExt, "stats_ext_event").
			Fixed(TagStatsExtEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtPeerStatsInfo, "peer_stats_info_event").
			Fixed(TagPeerStatsInfoEvent, "fixed_param", 12).
			Structs(TagPeerExtdStats, "peer_extd_stats", 40).
			MustBuild(),
		NewSchema(EvtRadioChanStats, "radio_chan_stats_event").
			Fixed(TagRadioChanStatsEvent, "fixed_param", 8).
			Structs(TagChanStats, "chan_stats", 32).
			MustBuild(),
		NewSchema(EvtRCPIInfo, "rcpi_info_event").
			Fixed(TagRCPIInfoEvent, "fixed_param", 24).
			MustBuild(),
		NewSchema(EvtWLMStats, "wlm_stats_event").
			Fixed(TagWLMStatsEvent, "fixed_param", 12).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtUpdateRSSIInfo, "update_rssi_info_event").
			Fixed(TagUpdateRSSIInfoEvent, "fixed_param", 24).
			MustBuild(),
		NewSchema(EvtReportStats, "report_stats_event").
			Fixed(TagReportStatsEvent, "fixed_param", 16).
			Structs(TagRateStats, "rate_report", 28).
			MustBuild(),

		// Network list offload
		NewSchema(EvtNLOMatch, "nlo_match_event").
			Fixed(TagNLOMatchEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtNLOScanComplete, "nlo_scan_complete_event").
			Fixed(TagNLOScanCompleteEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtApfind, "apfind_event").
			Fixed(TagApfindEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtPasspointMatch, "passpoint_match_event").
			Fixed(TagPasspointMatchEvent, "fixed_param", 24).
			Bytes(TagBufp, "frame").
			MustBuild(),

		// GTK offload
		NewSchema(EvtGTKOffloadStatus, "gtk_offload_status_event").
			Fixed(TagGTKOffloadStatusEvent, "fixed_param", 40).
			FixedArray(TagReplayCounter, "replay_counter", 1, 8).
			FixedArray(TagKCK, "igtk", 1, 16).
			MustBuild(),
		NewSchema(EvtGTKRekeyFail, "gtk_rekey_fail_event").
			Fixed(TagGTKRekeyFailEvent, "fixed_param", 12).
			MustBuild(),

		// Chatter mode
		NewSchema(EvtChatterPCQuery, "chatter_pc_query_event").
			Fixed(TagChatterPCQueryEvent, "fixed_param", 8).
			Bytes(TagData, "coalescing_ids").
			MustBuild(),

		// Station vdev
		NewSchema(EvtStaSMPSForceModeComplete, "sta_smps_force_mode_complete_event").
			Fixed(TagStaSMPSForceModeCompleteEvent, "fixed_param", 8).
			MustBuild(),

		// Miscellaneous
		NewSchema(EvtEcho, "echo_event").
			Fixed(TagEchoEvent, "fixed_param", 4).
			Bytes(TagEchoData, "echo_data").
			MustBuild(),
		NewSchema(EvtPdevUTF, "pdev_utf_event").
			Fixed(TagPdevUTFEvent, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtDebugMessage, "debug_message_event").
			Fixed(TagDebugMessageEvent, "fixed_param", 4).
			Bytes(TagDebugPayload, "debug_payload").
			MustBuild(),
		NewSchema(EvtDebugPrint, "debug_print_event").
			Fixed(TagDebugPrintEvent, "fixed_param", 4).
			Bytes(TagDebugPayload, "debug_payload").
			MustBuild(),
		NewSchema(EvtDCSInterference, "dcs_interference_event").
			Fixed(TagDCSInterferenceEvent, "fixed_param", 8).
			Structs(TagDCSStats, "dcs_stats", 40).
			MustBuild(),
		NewSchema(EvtPdevQVIT, "pdev_qvit_event").
			Fixed(TagPdevQVITEvent, "fixed_param", 4).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtWlanProfileData, "wlan_profile_data_event").
			Fixed(TagWlanProfileDataEvent, "fixed_param", 12).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(EvtDebugMesgFlushComplete, "debug_mesg_flush_complete_event").
			Fixed(TagDebugMesgFlushCompleteEvent, "fixed_param", 4).
			MustBuild(),
		NewSchema(EvtDiagEventLogSupported, "diag_event_log_supported_event").
			Fixed(TagDiagEventLogSupportedEvent, "fixed_param", 4).
			Words(TagArgs, "log_ids").
			MustBuild(),
		NewSchema(EvtRegChanListCc, "reg_chan_list_cc_event").
			Fixed(TagRegChanListCcEvent, "fixed_param", 44).
			Structs(TagRegRules, "reg_rules", 20).
			MustBuild(),
		NewSchema(EvtNewCountry11d, "new_country_11d_event").
			Fixed(TagNewCountry11dEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtUpdateWHALMIBStats, "update_whal_mib_stats_event").
			Fixed(TagUpdateWHALMIBStatsEvent, "fixed_param", 40).
			MustBuild(),

		// GPIO
		NewSchema(EvtGPIOInput, "gpio_input_event").
			Fixed(TagGPIOInputEvent, "fixed_param", 4).
			MustBuild(),

		// Firmware test
		NewSchema(EvtFwtestUnitTest, "fwtest_unit_test_event").
			Fixed(TagFwtestUnitTestEvent, "fixed_param", 16).
			Words(TagArgs, "args").
			MustBuild(),

		// TDLS
		NewSchema(EvtTDLSPeer, "tdls_peer_event").
			Fixed(TagTDLSPeerEvent, "fixed_param", 24).
			MustBuild(),

		// Resource manager
		NewSchema(EvtResmgrChanTimeQuota, "resmgr_chan_time_quota_event").
			Fixed(TagResmgrChanTimeQuotaEvent, "fixed_param", 8).
			Structs(TagMCCQuota, "mcc_quota", 8).
			MustBuild(),

		// P2P
		NewSchema(EvtP2PNoA, "p2p_noa_event").
			Fixed(TagP2PNoAEvent, "fixed_param", 4).
			Fixed(TagP2PNoAInfo, "p2p_noa_info", 20).
			Mandatory().
			MustBuild(),
		NewSchema(EvtP2PDiscReport, "p2p_disc_report_event").
			Fixed(TagP2PDiscReportEvent, "fixed_param", 12).
			Bytes(TagData, "frame").
			MustBuild(),
		NewSchema(EvtP2PListenOffloadStopped, "p2p_listen_offload_stopped_event").
			Fixed(TagP2PListenOffloadStoppedEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtP2PLOStop, "p2p_lo_stop_event").
			Fixed(TagP2PLOStopEvent, "fixed_param", 8).
			MustBuild(),

		// Extended scan
		NewSchema(EvtExtscanStartStop, "extscan_start_stop_event").
			Fixed(TagExtscanStartStopEvent, "fixed_param", 20).
			MustBuild(),
		NewSchema(EvtExtscanOperation, "extscan_operation_event").
			Fixed(TagExtscanOperationEvent, "fixed_param", 24).
			Words(TagArgs, "bucket_ids").
			MustBuild(),
		NewSchema(EvtExtscanTableUsage, "extscan_table_usage_event").
			Fixed(TagExtscanTableUsageEvent, "fixed_param", 16).
			MustBuild(),
		NewSchema(EvtExtscanCachedResults, "extscan_cached_results_event").
			Fixed(TagExtscanCachedResultsEvent, "fixed_param", 28).
			Structs(TagExtscanResults, "extscan_results", 40).
			MustBuild(),
		NewSchema(EvtExtscanWlanChangeResults, "extscan_wlan_change_results_event").
			Fixed(TagExtscanWlanChangeResultsEvent, "fixed_param", 24).
			Structs(TagWlanChangeEntries, "wlan_change_entries", 24).
			Words(TagRSSIList, "rssi_list").
			MustBuild(),
		NewSchema(EvtExtscanHotlistMatch, "extscan_hotlist_match_event").
			Fixed(TagExtscanHotlistMatchEvent, "fixed_param", 24).
			Structs(TagExtscanResults, "extscan_results", 40).
			MustBuild(),
		NewSchema(EvtExtscanCapabilities, "extscan_capabilities_event").
			Fixed(TagExtscanCapabilitiesEvent, "fixed_param", 12).
			Words(TagArgs, "cache_capabilities").
			MustBuild(),
		NewSchema(EvtExtscanHotlistSSIDMatch, "extscan_hotlist_ssid_match_event").
			Fixed(TagExtscanHotlistSSIDMatchEvent, "fixed_param", 24).
			Structs(TagExtscanResults, "extscan_results", 40).
			MustBuild(),

		// Coexistence
		NewSchema(EvtCoexAntennaIsolation, "coex_antenna_isolation_event").
			Fixed(TagCoexAntennaIsolationEvent, "fixed_param", 4).
			Words(TagAntIsolation, "ant_isolation").
			MustBuild(),
		NewSchema(EvtChanAvoid, "chan_avoid_event").
			Fixed(TagChanAvoidEvent, "fixed_param", 8).
			Structs(TagChannelList, "channel_list", 24).
			MustBuild(),

		// Packet filter
		NewSchema(EvtBPFCapabilityInfo, "bpf_capability_info_event").
			Fixed(TagBPFCapabilityInfoEvent, "fixed_param", 12).
			MustBuild(),
		NewSchema(EvtBPFVdevStats, "bpf_vdev_stats_event").
			Fixed(TagBPFVdevStatsEvent, "fixed_param", 20).
			MustBuild(),
		NewSchema(EvtBPFGetVdevWorkMemoryResp, "bpf_get_vdev_work_memory_resp_event").
			Fixed(TagBPFGetVdevWorkMemoryRespEvent, "fixed_param", 16).
			Bytes(TagData, "data").
			MustBuild(),

		// Target wake time
		NewSchema(EvtTWTEnableComplete, "twt_enable_complete_event").
			Fixed(TagTWTEnableCompleteEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtTWTDisableComplete, "twt_disable_complete_event").
			Fixed(TagTWTDisableCompleteEvent, "fixed_param", 4).
			MustBuild(),
		NewSchema(EvtTWTAddDialogComplete, "twt_add_dialog_complete_event").
			Fixed(TagTWTAddDialogCompleteEvent, "fixed_param", 20).
			Words(TagTWTParams, "twt_params").
			MustBuild(),
		NewSchema(EvtTWTDelDialogComplete, "twt_del_dialog_complete_event").
			Fixed(TagTWTDelDialogCompleteEvent, "fixed_param", 20).
			MustBuild(),
		NewSchema(EvtTWTPauseDialogComplete, "twt_pause_dialog_complete_event").
			Fixed(TagTWTPauseDialogCompleteEvent, "fixed_param", 20).
			MustBuild(),
		NewSchema(EvtTWTResumeDialogComplete, "twt_resume_dialog_complete_event").
			Fixed(TagTWTResumeDialogCompleteEvent, "fixed_param", 20).
			MustBuild(),

		// Motion detection
		NewSchema(EvtMotionDetHost, "motion_det_host_event").
			Fixed(TagMotionDetHostEvent, "fixed_param", 8).
			MustBuild(),
		NewSchema(EvtMotionDetBaseLineHost, "motion_det_base_line_host_event").
			Fixed(TagMotionDetBaseLineHostEvent, "fixed_param", 16).
			Words(TagMDThresholds, "md_thresholds").
			MustBuild(),
	}
}
